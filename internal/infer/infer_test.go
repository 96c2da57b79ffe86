package infer_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/schedgen/internal/infer"
	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/sched"
	"github.com/sarchlab/schedgen/internal/schederr"
	"github.com/sarchlab/schedgen/internal/target"
)

func measuredInstr(opcode string, reg *sched.Registry, writes []*sched.Write, isaSet string, latency, numUops int, ports ...[]int) *instr.Instruction {
	uops := make([]instr.Uop, len(ports))
	for i, p := range ports {
		uops[i] = instr.NewUop(resource.Ports(p...), nil, nil)
	}
	in := instr.New(opcode, nil, writes, isaSet)
	in.SetUopsInfo(instr.NewUopsInfo(latency, nil, uops, numUops))
	return in
}

var _ = Describe("Pipeline", func() {
	var profile = target.NewSkylake()

	It("infers a shared class's resources from consistent measurements", func() {
		reg := sched.NewRegistry()
		alu := reg.Write("WriteALU")

		in1 := measuredInstr("ADD32rr", reg, []*sched.Write{alu}, "", 1, 1, []int{0, 1})
		in2 := measuredInstr("SUB32rr", reg, []*sched.Write{alu}, "", 1, 1, []int{0, 1})

		p := infer.New(reg, profile, []*instr.Instruction{in1, in2}, nil)
		Expect(p.Run()).To(Succeed())

		Expect(alu.IsComplete()).To(BeTrue())
		Expect(alu.Latency()).To(Equal(1))
		Expect(alu.NumUops()).To(Equal(1))
		Expect(alu.Resources()).To(HaveLen(1))
		Expect(alu.Resources()[0].Equal(resource.NewPortSet(resource.Ports(0, 1)...))).To(BeTrue())
	})

	It("synthesizes a SchedWriteRes override when a seeded class doesn't match", func() {
		reg := sched.NewRegistry()
		foo := reg.Write("WriteFoo")
		foo.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)

		in := measuredInstr("WEIRDrr", reg, []*sched.Write{foo}, "", 2, 1, []int{1})

		p := infer.New(reg, profile, []*instr.Instruction{in}, nil)
		Expect(p.Run()).To(Succeed())

		Expect(in.UseInstrw()).To(BeTrue())
		Expect(in.SchedWrites).To(HaveLen(1))
		Expect(in.SchedWrites[0]).NotTo(BeIdenticalTo(foo))
		Expect(in.SchedWrites[0].Latency()).To(Equal(2))
		Expect(in.SchedWrites[0].Kind()).To(Equal(sched.KindRes))
	})

	It("strips a hand-seeded aux write whose claim exceeds the measurement", func() {
		reg := sched.NewRegistry()
		base := reg.Write("WriteBase")
		base.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)
		wrongAux := reg.Write("WriteWrongAux")
		wrongAux.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(2)...)}, []int{1}, 5, 1, true)

		in := measuredInstr("LOADrr", reg, []*sched.Write{base, wrongAux}, "", 1, 1, []int{0})

		p := infer.New(reg, profile, []*instr.Instruction{in}, nil)
		Expect(p.Run()).To(Succeed())

		Expect(in.UseInstrw()).To(BeTrue())
		Expect(in.SchedWrites).To(HaveLen(1))
		Expect(in.SchedWrites[0]).To(BeIdenticalTo(base))
	})

	It("tags a class unsupported when every tagged instruction uses an unimplemented ISA", func() {
		reg := sched.NewRegistry()
		avx512 := reg.Write("WriteAVX512")
		avx512.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)

		in := instr.New("VADDPDZrr", nil, []*sched.Write{avx512}, "AVX512F_512")

		p := infer.New(reg, profile, []*instr.Instruction{in}, nil)
		Expect(p.Run()).To(Succeed())

		Expect(avx512.IsSupported()).To(BeFalse())
	})

	It("leaves a class supported when it's shared by an untagged instruction", func() {
		reg := sched.NewRegistry()
		w := reg.Write("WriteGeneric")
		w.SetResources([]resource.PortSet{resource.NewPortSet(resource.Ports(0)...)}, []int{1}, 1, 1, false)

		in := instr.New("MOV32rr", nil, []*sched.Write{w}, "")

		p := infer.New(reg, profile, []*instr.Instruction{in}, nil)
		Expect(p.Run()).To(Succeed())

		Expect(w.IsSupported()).To(BeTrue())
	})

	It("rejects an instruction with two simultaneously-incomplete non-aux writes", func() {
		reg := sched.NewRegistry()
		a := reg.Write("WriteA")
		b := reg.Write("WriteB")

		in := measuredInstr("AMBIGrr", reg, []*sched.Write{a, b}, "", 2, 2, []int{0}, []int{1})

		p := infer.New(reg, profile, []*instr.Instruction{in}, nil)
		err := p.Run()
		Expect(err).To(HaveOccurred())

		var dataErr *schederr.DataError
		Expect(errors.As(err, &dataErr)).To(BeTrue())
		Expect(dataErr.Opcode).To(Equal("AMBIGrr"))
	})

	It("passes validation after synthesizing an override for a zero-uop measurement", func() {
		reg := sched.NewRegistry()
		foo := reg.Write("WriteFoo")
		foo.SetResources(nil, nil, 0, 0, false)

		in := instr.New("BROKENrr", nil, []*sched.Write{foo}, "")
		in.SetUopsInfo(instr.NewUopsInfo(3, nil, nil, 2))

		p := infer.New(reg, profile, []*instr.Instruction{in}, nil)
		Expect(p.Run()).To(Succeed())
		Expect(in.ComputeLatency()).To(Equal(3))
		Expect(in.ComputeNumUops()).To(Equal(2))
	})
})
