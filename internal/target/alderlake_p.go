package target

import (
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/sched"
)

var alderlakePISASet = []string{
	"3DNOW_PREFETCH", "ADOX_ADCX", "AES", "AVX",
	"AVX2", "AVX2GATHER", "AVXAES", "AVX_GFNI",
	"AVX_VNNI", "BMI1", "BMI2", "CET",
	"CLDEMOTE", "CLFLUSHOPT", "CLFSH", "CLWB",
	"CMOV", "CMPXCHG16B", "F16C", "FAT_NOP",
	"FCMOV", "FMA", "FXSAVE", "FXSAVE64",
	"GFNI", "HRESET", "I186", "I286PROTECTED",
	"I286REAL", "I386", "I486", "I486REAL",
	"I86", "INVPCID", "KEYLOCKER", "KEYLOCKER_WIDE",
	"LAHF", "LONGMODE", "LZCNT", "MONITOR",
	"MOVBE", "MOVDIR", "PAUSE", "PCLMULQDQ",
	"PCONFIG", "PENTIUMMMX", "PENTIUMREAL", "PKU",
	"POPCNT", "PPRO", "PPRO_UD0_SHORT", "PREFETCHW",
	"PREFETCH_NOP", "PTWRITE", "RDPID", "RDPMC",
	"RDRAND", "RDSEED", "RDTSCP", "RDWRFSGS",
	"SERIALIZE", "SHA", "SMAP", "SMX",
	"SSE", "SSE2", "SSE2MMX", "SSE3",
	"SSE3X87", "SSE4", "SSE42", "SSEMXCSR",
	"SSE_PREFETCH", "SSSE3", "SSSE3MMX", "VAES",
	"VMFUNC", "VPCLMULQDQ", "VTX", "WAITPKG",
	"WBNOINVD", "X87", "XSAVE", "XSAVEC",
	"XSAVEOPT", "XSAVES",
}

// NewAlderlakeP builds the Alder Lake (P-core) profile, grounded on
// lib/target.py's AlderlakeP.
func NewAlderlakeP() *Profile {
	return NewBuilder("ADLP", "alderlake", "AlderlakePModel").
		WithPorts(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11).
		WithLoadPorts(2, 3, 11).
		WithLoadLatency(5).
		WithMaxLatency(100).
		WithISASet(alderlakePISASet...).
		WithDecodeStyle(decodeTwoDigit).
		WithSeed(seedADLPFamily(false)).
		Build()
}

// seedADLPFamily returns the hand-specified SchedWrite seed shared by
// AlderlakeP and SapphireRapids (lib/target.py's near-identical
// __set_schedwrite_resource bodies). withCMOV adds SapphireRapids' extra
// WriteCMOV definition.
func seedADLPFamily(withCMOV bool) func(reg *sched.Registry, p *Profile) {
	return func(reg *sched.Registry, p *Profile) {
		port0409 := resource.NewPortSet(resource.Ports(4, 9)...)
		port0708 := resource.NewPortSet(resource.Ports(7, 8)...)
		loadPorts := resource.NewPortSet(p.loadPorts...)

		reg.Write("WriteIMulH").SetResources(nil, nil, 3, 1, true)
		reg.Write("WriteIMulHLd").SetResources(nil, nil, 3, 1, true)
		reg.Write("WriteRMW").SetResources(
			[]resource.PortSet{loadPorts, port0409, port0708},
			[]int{1, 1, 1}, 1, 3, true)
		reg.Write("WriteVecMaskedGatherWriteback").SetResources(nil, nil, p.loadLatency, 0, true)

		reg.Write("WriteZero").SetResources(nil, nil, 1, 1, false)
		reg.Write("WriteLoad").SetResources(
			[]resource.PortSet{loadPorts}, []int{1}, p.loadLatency, 1, false)

		if withCMOV {
			port0006 := resource.NewPortSet(resource.Ports(0, 6)...)
			reg.Write("WriteCMOV").SetResources(
				[]resource.PortSet{port0006}, []int{1}, 1, 1, false)
		}
	}
}
