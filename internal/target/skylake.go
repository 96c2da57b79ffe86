package target

var skylakeISASet = []string{
	"3DNOW_PREFETCH", "ADOX_ADCX", "AES", "AVX",
	"AVX2", "AVX2GATHER", "AVXAES", "BMI1",
	"BMI2", "CLFLUSHOPT", "CLFSH", "CMOV",
	"CMPXCHG16B", "F16C", "FAT_NOP", "FCMOV",
	"FMA", "FXSAVE", "FXSAVE64", "I186",
	"I286PROTECTED", "I286REAL", "I386", "I486",
	"I486REAL", "I86", "INVPCID", "LAHF",
	"LONGMODE", "LZCNT", "MONITOR", "MOVBE",
	"MPX", "PAUSE", "PCLMULQDQ", "PENTIUMMMX",
	"PENTIUMREAL", "POPCNT", "PPRO", "PPRO_UD0_LONG",
	"PREFETCHW", "PREFETCH_NOP", "RDPMC", "RDRAND",
	"RDSEED", "RDTSCP", "RDWRFSGS", "RTM",
	"SGX", "SMAP", "SMX", "SSE",
	"SSE2", "SSE2MMX", "SSE3", "SSE3X87",
	"SSE4", "SSE42", "SSEMXCSR", "SSE_PREFETCH",
	"SSSE3", "SSSE3MMX", "VMFUNC", "VTX",
	"X87", "XSAVE", "XSAVEC", "XSAVEOPT",
	"XSAVES",
}

// NewSkylake builds the Skylake (client) profile, grounded on
// lib/target.py's Skylake. Unlike AlderlakeP/SapphireRapids it seeds no
// SchedWrites by hand: its entire resource set comes from inference.
func NewSkylake() *Profile {
	return NewBuilder("SKL", "skylake", "SkylakeModel").
		WithPorts(0, 1, 2, 3, 4, 5, 6, 7).
		WithLoadPorts(2, 3).
		WithLoadLatency(5).
		WithMaxLatency(100).
		WithISASet(skylakeISASet...).
		WithDecodeStyle(decodeSingleDigit).
		Build()
}
