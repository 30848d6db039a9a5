package standards

import (
	"github.com/openplots/limitgraph/internal/publish"
	"github.com/openplots/limitgraph/pkg/limits"
)

// runPart3 produces the connector figures of part 3. The first eight
// figure numbers belong to hand-drawn diagrams earlier in the document and
// are reserved before plotting starts.
func runPart3(ses *publish.Session) error {
	cat := limits.Part3()
	ses.SkipFigure(8)

	return plotAll(ses, cat, []figure{
		{limits.ConnectorIL, publish.Options{
			Abbr: "IL", Unit: "dB", YLim: span(0, 0.25),
			Pass: frac(0.75, 0.3), Fail: frac(0.6, 0.5),
			Caption: "Insertion Loss (IL) Connector",
		}},
		{limits.ConnectorRL, publish.Options{
			Abbr: "RL", Unit: "dB", YLim: span(15, 35),
			Pass: frac(0.60, 0.82), Fail: frac(0.60, 0.68),
			Caption: "Return Loss (RL) Connector",
		}},
		{limits.ConnectorLCL, publish.Options{
			Abbr: "LCL", Unit: "dB", YLim: span(30, 60),
			Pass: frac(0.7, 0.55), Fail: frac(0.55, 0.35),
			Caption: "Mode Conversion Loss (LCL) Connector",
		}},
		{limits.ConnectorLCTL, publish.Options{
			Abbr: "LCTL", Unit: "dB", YLim: span(30, 60),
			Pass: frac(0.7, 0.55), Fail: frac(0.55, 0.35),
			Caption: "Mode Conversion Loss (LCTL) Connector",
		}},
		{limits.ConnectorCouplingAtt1, publish.Options{
			Abbr: "a_c", Unit: "dB", YLim: span(50, 80),
			Pass: data(400, 63.5), Fail: data(200, 56.5),
			Caption: "Coupling Attenuation Connector",
		}},
		{limits.ConnectorScreenAtt1, publish.Options{
			Abbr: "a_s", Unit: "dB", YLim: span(10, 40),
			Pass: data(150, 31.0), Fail: data(150, 26.0),
			Caption: "Screening Attenuation Connector",
		}},
	})
}
