package standards

import (
	"github.com/openplots/limitgraph/internal/publish"
	"github.com/openplots/limitgraph/internal/render"
	"github.com/openplots/limitgraph/pkg/limits"
)

// runPart10 produces the part 10 figures: the normative cable and ECU
// shield figures in the main body, then the informative whole-channel and
// cable-assembly figures as appendices A and B.
func runPart10(ses *publish.Session) error {
	cat := limits.Part10()

	if err := plotAll(ses, cat, part10Body); err != nil {
		return err
	}
	ses.StartAppendix("")
	if err := plotAll(ses, cat, part10Channel); err != nil {
		return err
	}
	ses.StartAppendix("")
	return plotAll(ses, cat, part10Assembly)
}

var part10Body = []figure{
	{limits.CableIL, publish.Options{
		Abbr: "IL", Unit: "dB/m", YLim: span(0, 1.0),
		Pass: data(150, 0.25), Fail: data(50, 0.4),
		Caption: "Insertion Loss (IL) Cable",
	}},
	{limits.CableRL, publish.Options{
		Abbr: "RL", Unit: "dB", YLim: span(10, 25),
		Pass: data(80, 20.0), Fail: data(80, 17.5),
		Caption: "Return Loss (RL) Cable",
	}},
	{limits.CableLCL, publish.Options{
		Abbr: "LCL", Unit: "dB", YLim: span(25, 55),
		Pass: data(140, 47.0), Fail: data(140, 36.0),
		Caption: "Mode Conversion Loss (LCL) Cable",
	}},
	{limits.CableLCTL, publish.Options{
		Abbr: "LCTL", Unit: "dB", YLim: span(25, 50),
		Pass: data(140, 45.0), Fail: data(140, 34.0),
		Caption: "Mode Conversion Loss (LCTL) Cable",
	}},
	{limits.CableCouplingAtt1, publish.Options{
		Abbr: "a_c", Unit: "dB", YLim: span(65, 75),
		Pass: data(140, 71.0), Fail: data(140, 69.0),
		Caption: "Coupling Attenuation (class 1) Cable",
	}},
	{limits.CableScreenAtt1, publish.Options{
		Abbr: "a_s", Unit: "dB", YLim: span(25, 45),
		Pass: data(140, 36.7), Fail: data(140, 33.0),
		Caption: "Screening Attenuation (class 1) Cable",
	}},
	{limits.ShieldImpedance, publish.Options{
		Abbr: "|Z_shield|", Unit: "Ohm", YLim: span(0, 80),
		Pass: data(200, 20), Fail: data(120, 45),
		Caption: "ECU Shield Impedance (AC)",
	}},
	{limits.ShieldResistanceDC, publish.Options{
		Abbr: "R_shield", Unit: "Ohm", YLim: span(1, 10000),
		YTicks: &render.TickSet{
			Values: []float64{1, 10, 100, 1000, 10000},
			Labels: []string{"1", "10", "100", "1k", "10k"},
		},
		Pass: data(0, 100), Fail: data(0, 5), Fail2: data(0, 3000),
		Caption: "ECU Shield Impedance (DC)",
	}},
}

var part10Channel = []figure{
	{limits.ChannelILTypeB, publish.Options{
		Abbr: "IL", Unit: "dB", YLim: span(0, 20),
		Pass: frac(0.75, 0.35), Fail: frac(0.55, 0.45),
		Caption: "Insertion Loss (IL) Communication Channel",
	}},
	{limits.ChannelRL, publish.Options{
		Abbr: "RL", Unit: "dB", YLim: span(10, 20),
		Pass: frac(0.60, 0.72), Fail: frac(0.60, 0.45),
		Caption: "Return Loss (RL) Communication Channel",
	}},
	{limits.ChannelLCL, publish.Options{
		Abbr: "LCL, LCTL", Unit: "dB", YLim: span(20, 45),
		Pass: frac(0.75, 0.55), Fail: frac(0.6, 0.35),
		Caption: "Mode Conversion Loss (LCL, LCTL) Communication Channel",
	}},
	{limits.ChannelPSANEXT, publish.Options{
		Abbr: "PSANEXT", Unit: "dB", YLim: span(30, 80),
		Pass: frac(0.75, 0.55), Fail: frac(0.6, 0.35),
		Caption: "Near-End Crosstalk (PSANEXT) Communication Channel",
	}},
	{limits.ChannelPSAACRF, publish.Options{
		Abbr: "PSAACRF", Unit: "dB", YLim: span(20, 100),
		Pass: frac(0.65, 0.5), Fail: frac(0.45, 0.25),
		Caption: "Attenuation to Crosstalk Ratio (PSAACRF) Communication Channel",
	}},
	{limits.ChannelCouplingAtt1, publish.Options{
		Abbr: "a_c", Unit: "dB", YLim: span(45, 70),
		Pass: data(400, 61.5), Fail: data(120, 56.5),
		Caption: "Coupling Attenuation (class 1) Communication Channel",
	}},
	{limits.ChannelScreenAtt1, publish.Options{
		Abbr: "a_s", Unit: "dB", YLim: span(22, 28),
		Pass: data(130, 25.3), Fail: data(130, 24.6),
		Caption: "Screening Attenuation (class 1) Communication Channel",
	}},
}

var part10Assembly = []figure{
	{limits.AssemblyRL, publish.Options{
		Abbr: "RL", Unit: "dB", YLim: span(10, 30),
		Pass: data(20, 23.0), Fail: data(20, 20.5),
		Caption: "Return Loss (RL) Cable Assembly",
	}},
	{limits.AssemblyLCL, publish.Options{
		Abbr: "LCL, LCTL", Unit: "dB", YLim: span(20, 45),
		Pass: data(140, 37.7), Fail: data(140, 30.5),
		Caption: "Mode Conversion Loss (LCL, LCTL) Cable Assembly",
	}},
	{limits.AssemblyCouplingAtt1, publish.Options{
		Abbr: "a_c", Unit: "dB", YLim: span(55, 75),
		Pass: data(140, 71.0), Fail: data(140, 65.0),
		Caption: "Coupling Attenuation (class 1) Cable Assembly",
	}},
	{limits.AssemblyScreenAtt1, publish.Options{
		Abbr: "a_s", Unit: "dB", YLim: span(20, 35),
		Pass: data(140, 30.0), Fail: data(140, 26.0),
		Caption: "Screening Attenuation (class 1) Cable Assembly",
	}},
}
