package limits

// Cable limit names. Insertion loss is specified per metre for a 15 m
// maximum run; the other limits are absolute.
const (
	CableIL           = "cable IL"
	CableRL           = "cable RL"
	CableLCL          = "cable LCL"
	CableLCTL         = "cable LCTL"
	CableCouplingAtt1 = "cable coupling attenuation class 1"
	CableCouplingAtt2 = "cable coupling attenuation class 2"
	CableScreenAtt1   = "cable screening attenuation class 1"
	CableScreenAtt2   = "cable screening attenuation class 2"
)

func addCable(cat *Catalogue) {
	// channel loss fit minus the budget of six connectors at 0.01*sqrt(f)
	// each, divided by the 15 m reference length
	cat.add(&Curve{
		Name: CableIL,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: func(f float64) float64 {
				return LossFit(0.0023, 0.5907-6.0*0.01, 0.0639)(f) / 15.0
			}},
		}}},
		Plan: LogSpace(1, 600, 101),
	})

	cat.add(&Curve{
		Name: CableRL,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 10, Eval: Constant(22)},
			{Upper: 40, Eval: LogLine(26.9829, -4.9829)},
			{Upper: 130, Eval: Constant(19)},
			{Upper: 400, Eval: LogLine(40.65408, -10.24345)},
			{Upper: 600, Eval: Constant(14)},
		}}},
		Plan: Corners(1, 10, 40, 130, 400, 600),
	})

	cat.add(&Curve{
		Name: CableLCL,
		FMin: 10, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 50, Eval: Constant(50)},
			{Upper: 600, Eval: LogLine(81.4863, -18.5326)},
		}}},
		Plan: Corners(10, 50, 600),
	})

	// unlike the connector and channel, the cable LCTL limit is its own
	// curve, 4 dB below the LCL floor
	cat.add(&Curve{
		Name: CableLCTL,
		FMin: 10, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 50, Eval: Constant(46)},
			{Upper: 600, Eval: LogLine(71.1890, -14.8261)},
		}}},
		Plan: Corners(10, 50, 600),
	})

	coupling1 := cat.add(&Curve{
		Name: CableCouplingAtt1,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(70)},
		}}},
		Plan: Corners(30, 600),
	})
	cat.alias(CableCouplingAtt2, coupling1)

	cat.add(&Curve{
		Name: CableScreenAtt1,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(35)},
		}}},
		Plan: Corners(30, 600),
	})

	cat.add(&Curve{
		Name: CableScreenAtt2,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(45)},
		}}},
		Plan: Corners(30, 600),
	})
}
