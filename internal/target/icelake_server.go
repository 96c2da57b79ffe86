package target

var icelakeServerISASet = []string{
	"3DNOW_PREFETCH", "ADOX_ADCX", "AES", "AVX",
	"AVX2", "AVX2GATHER", "AVX512BW_128", "AVX512BW_128N",
	"AVX512BW_256", "AVX512BW_512", "AVX512BW_KOP", "AVX512CD_128",
	"AVX512CD_256", "AVX512CD_512", "AVX512DQ_128", "AVX512DQ_128N",
	"AVX512DQ_256", "AVX512DQ_512", "AVX512DQ_KOP", "AVX512DQ_SCALAR",
	"AVX512F_128", "AVX512F_128N", "AVX512F_256", "AVX512F_512",
	"AVX512F_KOP", "AVX512F_SCALAR", "AVX512_BITALG_128", "AVX512_BITALG_256",
	"AVX512_BITALG_512", "AVX512_GFNI_128", "AVX512_GFNI_256", "AVX512_GFNI_512",
	"AVX512_IFMA_128", "AVX512_IFMA_256", "AVX512_IFMA_512", "AVX512_VAES_128",
	"AVX512_VAES_256", "AVX512_VAES_512", "AVX512_VBMI2_128", "AVX512_VBMI2_256",
	"AVX512_VBMI2_512", "AVX512_VBMI_128", "AVX512_VBMI_256", "AVX512_VBMI_512",
	"AVX512_VNNI_128", "AVX512_VNNI_256", "AVX512_VNNI_512", "AVX512_VPCLMULQDQ_128",
	"AVX512_VPCLMULQDQ_256", "AVX512_VPCLMULQDQ_512", "AVX512_VPOPCNTDQ_128",
	"AVX512_VPOPCNTDQ_256", "AVX512_VPOPCNTDQ_512", "AVXAES", "AVX_GFNI", "BMI1",
	"BMI2", "CLFLUSHOPT", "CLFSH", "CLWB",
	"CMOV", "CMPXCHG16B", "F16C", "FAT_NOP",
	"FCMOV", "FCOMI", "FMA", "FXSAVE",
	"FXSAVE64", "GFNI", "I186", "I286PROTECTED",
	"I286REAL", "I386", "I486", "I486REAL",
	"I86", "INVPCID", "LAHF", "LONGMODE",
	"LZCNT", "MONITOR", "MOVBE", "PAUSE",
	"PCLMULQDQ", "PCONFIG", "PENTIUMMMX", "PENTIUMREAL",
	"PKU", "POPCNT", "PPRO", "PPRO_UD0_LONG",
	"PREFETCHW", "PREFETCH_NOP", "RDPID", "RDPMC",
	"RDRAND", "RDSEED", "RDTSCP", "RDWRFSGS",
	"RTM", "SGX", "SGX_ENCLV", "SHA",
	"SMAP", "SMX", "SSE", "SSE2",
	"SSE2MMX", "SSE3", "SSE3X87", "SSE4",
	"SSE42", "SSEMXCSR", "SSE_PREFETCH", "SSSE3",
	"SSSE3MMX", "VAES", "VMFUNC", "VPCLMULQDQ",
	"VTX", "WBNOINVD", "X87", "XSAVE",
	"XSAVEC", "XSAVEOPT", "XSAVES",
}

// NewIcelakeServer builds the Icelake server profile, grounded on
// lib/target.py's IcelakeServer.
func NewIcelakeServer() *Profile {
	return NewBuilder("ICX", "icelake-server", "Icelake-serverModel").
		WithPorts(0, 1, 2, 3, 4, 5, 6, 7, 8, 9).
		WithLoadPorts(2, 3).
		WithLoadLatency(5).
		WithMaxLatency(100).
		WithISASet(icelakeServerISASet...).
		WithDecodeStyle(decodeSingleDigit).
		Build()
}
