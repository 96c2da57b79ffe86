package target

var sapphireRapidsISASet = []string{
	"3DNOW_PREFETCH", "ADOX_ADCX", "AES", "AMX_BF16",
	"AMX_INT8", "AMX_TILE", "AVX", "AVX2",
	"AVX2GATHER", "AVX512BW_128", "AVX512BW_128N", "AVX512BW_256",
	"AVX512BW_512", "AVX512BW_KOP", "AVX512CD_128", "AVX512CD_256",
	"AVX512CD_512", "AVX512DQ_128", "AVX512DQ_128N", "AVX512DQ_256",
	"AVX512DQ_512", "AVX512DQ_KOP", "AVX512DQ_SCALAR", "AVX512F_128",
	"AVX512F_128N", "AVX512F_256", "AVX512F_512", "AVX512F_KOP",
	"AVX512F_SCALAR", "AVX512_BF16_128", "AVX512_BF16_256", "AVX512_BF16_512",
	"AVX512_BITALG_128", "AVX512_BITALG_256", "AVX512_BITALG_512", "AVX512_FP16_128",
	"AVX512_FP16_128N", "AVX512_FP16_256", "AVX512_FP16_512", "AVX512_FP16_SCALAR",
	"AVX512_GFNI_128", "AVX512_GFNI_256", "AVX512_GFNI_512", "AVX512_IFMA_128",
	"AVX512_IFMA_256", "AVX512_IFMA_512", "AVX512_VAES_128", "AVX512_VAES_256",
	"AVX512_VAES_512", "AVX512_VBMI2_128", "AVX512_VBMI2_256", "AVX512_VBMI2_512",
	"AVX512_VBMI_128", "AVX512_VBMI_256", "AVX512_VBMI_512", "AVX512_VNNI_128",
	"AVX512_VNNI_256", "AVX512_VNNI_512", "AVX512_VP2INTERSECT_128",
	"AVX512_VP2INTERSECT_256", "AVX512_VP2INTERSECT_512", "AVX512_VPCLMULQDQ_128",
	"AVX512_VPCLMULQDQ_256", "AVX512_VPCLMULQDQ_512", "AVX512_VPOPCNTDQ_128",
	"AVX512_VPOPCNTDQ_256", "AVX512_VPOPCNTDQ_512", "AVXAES",
	"AVX_GFNI", "AVX_VNNI", "BMI1", "BMI2",
	"CET", "CLDEMOTE", "CLFLUSHOPT", "CLFSH",
	"CLWB", "CMOV", "CMPXCHG16B", "ENQCMD",
	"F16C", "FAT_NOP", "FCMOV", "FMA",
	"FXSAVE", "FXSAVE64", "GFNI", "I186",
	"I286PROTECTED", "I286REAL", "I386", "I486",
	"I486REAL", "I86", "INVPCID", "LAHF",
	"LONGMODE", "LZCNT", "MONITOR", "MOVBE",
	"MOVDIR", "PAUSE", "PCLMULQDQ", "PCONFIG",
	"PENTIUMMMX", "PENTIUMREAL", "PKU", "POPCNT",
	"PPRO", "PPRO_UD0_LONG", "PREFETCHW", "PREFETCH_NOP",
	"PTWRITE", "RDPID", "RDPMC", "RDRAND",
	"RDSEED", "RDTSCP", "RDWRFSGS", "RTM",
	"SERIALIZE", "SGX", "SGX_ENCLV", "SHA",
	"SMAP", "SMX", "SSE", "SSE2",
	"SSE2MMX", "SSE3", "SSE3X87", "SSE4",
	"SSE42", "SSEMXCSR", "SSE_PREFETCH", "SSSE3",
	"SSSE3MMX", "TDX", "TSX_LDTRK", "UINTR",
	"VAES", "VMFUNC", "VPCLMULQDQ", "VTX",
	"WAITPKG", "WBNOINVD", "X87", "XSAVE",
	"XSAVEC", "XSAVEOPT", "XSAVES",
}

// NewSapphireRapids builds the Sapphire Rapids profile, grounded on
// lib/target.py's SapphireRapids — identical port topology and
// hand-seeded SchedWrites to AlderlakeP, plus WriteCMOV.
func NewSapphireRapids() *Profile {
	return NewBuilder("SPR", "sapphirerapids", "SapphireRapidsModel").
		WithPorts(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11).
		WithLoadPorts(2, 3, 11).
		WithLoadLatency(5).
		WithMaxLatency(100).
		WithISASet(sapphireRapidsISASet...).
		WithDecodeStyle(decodeTwoDigit).
		WithSeed(seedADLPFamily(true)).
		Build()
}
