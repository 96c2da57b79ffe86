package target

var skylakeServerISASet = []string{
	"3DNOW_PREFETCH", "ADOX_ADCX", "AES", "AVX",
	"AVX2", "AVX2GATHER", "AVX512BW_128", "AVX512BW_128N",
	"AVX512BW_256", "AVX512BW_512", "AVX512BW_KOP", "AVX512CD_128",
	"AVX512CD_256", "AVX512CD_512", "AVX512DQ_128", "AVX512DQ_128N",
	"AVX512DQ_256", "AVX512DQ_512", "AVX512DQ_KOP", "AVX512DQ_SCALAR",
	"AVX512F_128", "AVX512F_128N", "AVX512F_256", "AVX512F_512",
	"AVX512F_KOP", "AVX512F_SCALAR", "AVXAES", "BMI1",
	"BMI2", "CLFLUSHOPT", "CLFSH", "CLWB",
	"CMOV", "CMPXCHG16B", "F16C", "FAT_NOP",
	"FCMOV", "FMA", "FXSAVE", "FXSAVE64",
	"I186", "I286PROTECTED", "I286REAL", "I386",
	"I486", "I486REAL", "I86", "INVPCID",
	"LAHF", "LONGMODE", "LZCNT", "MONITOR",
	"MOVBE", "MPX", "PAUSE", "PCLMULQDQ",
	"PENTIUMMMX", "PENTIUMREAL", "PKU", "POPCNT",
	"PPRO", "PPRO_UD0_LONG", "PREFETCHW", "PREFETCH_NOP",
	"RDPMC", "RDRAND", "RDSEED", "RDTSCP",
	"RDWRFSGS", "RTM", "SGX", "SMAP",
	"SMX", "SSE", "SSE2", "SSE2MMX",
	"SSE3", "SSE3X87", "SSE4", "SSE42",
	"SSEMXCSR", "SSE_PREFETCH", "SSSE3", "SSSE3MMX",
	"VMFUNC", "VTX", "X87", "XSAVE",
	"XSAVEC", "XSAVEOPT", "XSAVES",
}

// NewSkylakeServer builds the Skylake-X / server profile, grounded on
// lib/target.py's SkylakeServer.
func NewSkylakeServer() *Profile {
	return NewBuilder("SKX", "skylake-avx512", "Skylake-avx512Model").
		WithPorts(0, 1, 2, 3, 4, 5, 6, 7).
		WithLoadPorts(2, 3).
		WithLoadLatency(5).
		WithMaxLatency(100).
		WithISASet(skylakeServerISASet...).
		WithDecodeStyle(decodeSingleDigit).
		Build()
}
