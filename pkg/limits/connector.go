package limits

// Connector limit names.
const (
	ConnectorIL           = "connector IL"
	ConnectorRL           = "connector RL"
	ConnectorLCL          = "connector LCL"
	ConnectorLCTL         = "connector LCTL"
	ConnectorPSANEXT      = "connector PSANEXT"
	ConnectorPSAFEXT      = "connector PSAFEXT"
	ConnectorCouplingAtt1 = "connector coupling attenuation class 1"
	ConnectorCouplingAtt2 = "connector coupling attenuation class 2"
	ConnectorScreenAtt1   = "connector screening attenuation class 1"
	ConnectorScreenAtt2   = "connector screening attenuation class 2"
)

// addConnector registers the connector limits. The sloped coefficients are
// precomputed so adjacent segments meet at the corner frequencies; the
// published piecewise limits have small discontinuities there, corrected
// here to the intent of the standard.
func addConnector(cat *Catalogue) {
	cat.add(&Curve{
		Name: ConnectorIL,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: LossFit(0, 0.01, 0)},
		}}},
		Plan: LogSpace(1, 600, 101),
	})

	cat.add(&Curve{
		Name: ConnectorRL,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 189.7367, Eval: Constant(30)},
			{Upper: 600, Eval: LogRef(20, -20, 600)},
		}}},
		Plan: Corners(1, 189.7367, 600),
	})

	lcl := cat.add(&Curve{
		Name: ConnectorLCL,
		FMin: 10, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 50, Eval: Constant(50)},
			{Upper: 600, Eval: LogLine(75.1890, -14.8261)},
		}}},
		Plan: Corners(10, 50, 600),
	})
	// the connector LCTL limit is identical to the LCL limit
	cat.alias(ConnectorLCTL, lcl)

	cat.add(&Curve{
		Name: ConnectorPSANEXT,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 100, Eval: LogLine(77, -10)},
			{Upper: 600, Eval: func(f float64) float64 {
				return LogLine(87, -15)(f) - 6*(f-100)/400
			}},
		}}},
		Plan: Corners(1, 100, 600),
	})

	cat.add(&Curve{
		Name: ConnectorPSAFEXT,
		FMin: 1, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: LogLine(86.67, -20)},
		}}},
		Plan: Corners(1, 600),
	})

	cat.add(&Curve{
		Name: ConnectorCouplingAtt1,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 100, Eval: Constant(70)},
			{Upper: 600, Eval: LogLine(108.5529, -19.2765)},
		}}},
		Plan: Corners(30, 100, 600),
	})

	cat.add(&Curve{
		Name: ConnectorCouplingAtt2,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(70)},
		}}},
		Plan: Corners(30, 600),
	})

	cat.add(&Curve{
		Name: ConnectorScreenAtt1,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(28)},
		}}},
		Plan: Corners(30, 600),
	})

	cat.add(&Curve{
		Name: ConnectorScreenAtt2,
		FMin: 30, FMax: 600,
		Traces: []Trace{{Segments: []Segment{
			{Upper: 600, Eval: Constant(45)},
		}}},
		Plan: Corners(30, 600),
	})
}
