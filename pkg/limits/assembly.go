package limits

// Cable assembly limit names (a cable segment with no inline connectors).
const (
	AssemblyIL           = "cable assembly IL"
	AssemblyRL           = "cable assembly RL"
	AssemblyLCL          = "cable assembly LCL"
	AssemblyLCTL         = "cable assembly LCTL"
	AssemblyCouplingAtt1 = "cable assembly coupling attenuation class 1"
	AssemblyCouplingAtt2 = "cable assembly coupling attenuation class 2"
	AssemblyScreenAtt1   = "cable assembly screening attenuation class 1"
	AssemblyScreenAtt2   = "cable assembly screening attenuation class 2"
)

func addCableAssembly(cat *Catalogue) {
	// There is no insertion loss limit for a standalone channel cable
	// segment. The entry still honors the sampling contract and comes back
	// undefined at every frequency.
	cat.add(&Curve{
		Name: AssemblyIL,
		FMin: 1, FMax: 600,
		Traces: []Trace{{}},
		Plan:   Corners(1, 600),
	})

	cat.add(&Curve{
		Name: AssemblyRL,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 130, Eval: Constant(22)},
			{Upper: 400, Eval: LogLine(56.6465, -16.3895)},
			{Upper: 600, Eval: Constant(14)},
		}}},
		Plan: Corners(1, 130, 400, 600),
	})

	lcl := cat.add(&Curve{
		Name: AssemblyLCL,
		FMin: 10, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 50, Eval: Constant(41)},
			{Upper: 600, Eval: LogLine(66.1890, -14.8261)},
		}}},
		Plan: Corners(10, 50, 600),
	})
	// the assembly LCTL limit is identical to the LCL limit
	cat.alias(AssemblyLCTL, lcl)

	cat.add(&Curve{
		Name: AssemblyCouplingAtt1,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 100, Eval: Constant(70)},
			{Upper: 400, Eval: LogLine(99.8974, -14.9487)},
			{Upper: 600, Eval: LogLine(75.7768, -5.6789)},
		}}},
		Plan: Corners(30, 100, 600),
	})

	cat.add(&Curve{
		Name: AssemblyCouplingAtt2,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(70)},
		}}},
		Plan: Corners(30, 600),
	})

	cat.add(&Curve{
		Name: AssemblyScreenAtt1,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(28)},
		}}},
		Plan: Corners(30, 600),
	})

	cat.add(&Curve{
		Name: AssemblyScreenAtt2,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(45)},
		}}},
		Plan: Corners(30, 600),
	})
}
