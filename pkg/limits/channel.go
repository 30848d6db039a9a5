package limits

// Whole communication channel and ECU shield limit names.
const (
	ChannelILTypeA      = "channel IL link segment type A"
	ChannelILTypeB      = "channel IL link segment type B"
	ChannelRL           = "channel RL"
	ChannelLCL          = "channel LCL"
	ChannelLCTL         = "channel LCTL"
	ChannelPSANEXT      = "channel PSANEXT"
	ChannelPSAACRF      = "channel PSAACRF"
	ChannelCouplingAtt1 = "channel coupling attenuation class 1"
	ChannelCouplingAtt2 = "channel coupling attenuation class 2"
	ChannelScreenAtt1   = "channel screening attenuation class 1"
	ChannelScreenAtt2   = "channel screening attenuation class 2"
	ShieldImpedance     = "ECU shield impedance"
	ShieldResistanceDC  = "ECU shield resistance DC"
)

// addChannel registers the whole communication channel limits. The PSANEXT
// sampling plan is the one entry that differs between editions, so the
// caller supplies it.
func addChannel(cat *Catalogue, psanextPlan []float64) {
	cat.add(&Curve{
		Name: ChannelILTypeA,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: LossFit(0.0023, 0.5907, 0.0639)},
		}}},
		Plan: LogSpace(1, 600, 101),
	})

	// link segment type B loss fit with the connector and cable aging
	// allowances folded into the sqrt coefficient
	cat.add(&Curve{
		Name: ChannelILTypeB,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: LossFit(0.0040, 0.7131+0.08+0.018, 0.1100)},
		}}},
		Plan: LogSpace(1, 600, 101),
	})

	cat.add(&Curve{
		Name: ChannelRL,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 10, Eval: Constant(19)},
			// slope corrected so the segments meet at 10 MHz and 40 MHz
			{Upper: 40, Eval: LogLine(23.9829, -4.9829)},
			{Upper: 130, Eval: Constant(16)},
			{Upper: 400, Eval: LogLine(37.65408, -10.24345)},
			{Upper: 600, Eval: Constant(11)},
		}}},
		Plan: Corners(1, 10, 40, 130, 400, 600),
	})

	lcl := cat.add(&Curve{
		Name: ChannelLCL,
		FMin: 10, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 50, Eval: Constant(41)},
			{Upper: 600, Eval: LogLine(66.1890, -14.8261)},
		}}},
		Plan: Corners(10, 50, 600),
	})
	// the channel LCTL limit is identical to the LCL limit
	cat.alias(ChannelLCTL, lcl)

	cat.add(&Curve{
		Name: ChannelPSANEXT,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 100, Eval: LogLine(74, -10)},
			{Upper: 600, Eval: func(f float64) float64 {
				return LogLine(84, -15)(f) - 6*(f-100)/400
			}},
		}}},
		Plan: psanextPlan,
	})

	cat.add(&Curve{
		Name: ChannelPSAACRF,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: LogRef(43.67, -20, 100)},
		}}},
		Plan: Corners(1, 600),
	})

	cat.add(&Curve{
		Name: ChannelCouplingAtt1,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 100, Eval: Constant(65)},
			{Upper: 600, Eval: LogLine(103.5529, -19.2765)},
		}}},
		Plan: Corners(30, 100, 600),
	})

	cat.add(&Curve{
		Name: ChannelCouplingAtt2,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(65)},
		}}},
		Plan: Corners(30, 600),
	})

	cat.add(&Curve{
		Name: ChannelScreenAtt1,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(25)},
		}}},
		Plan: Corners(30, 600),
	})

	cat.add(&Curve{
		Name: ChannelScreenAtt2,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(40)},
		}}},
		Plan: Corners(30, 600),
	})
}

// addShield registers the ECU shield termination impedance limits.
func addShield(cat *Catalogue) {
	cat.add(&Curve{
		Name: ShieldImpedance,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 60, Eval: Constant(10)},
			{Upper: 600, Eval: LogRef(10, 60, 60)},
		}}},
		Plan: Corners(1, 60, 600),
	})

	// DC shield resistance window: lower bound 10 Ohm, upper bound 1 kOhm,
	// plotted as two flat traces around 0 Hz
	cat.add(&Curve{
		Name: ShieldResistanceDC,
		FMin: -0.1, FMax: 0.1,
		Traces: []Trace{
			{Segments: []Segment{{Upper: 0.1, Eval: Constant(10)}}},
			{Segments: []Segment{{Upper: 0.1, Eval: Constant(1.0e3)}}},
		},
		Plan: Corners(-0.1, 0.1),
		DC:   true,
	})
}
