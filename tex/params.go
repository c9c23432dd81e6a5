// params.go -
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package tex

// The integer parameters of TeX.
var integerParams = []string{
	"pretolerance", "tolerance", "linepenalty", "hyphenpenalty",
	"exhyphenpenalty", "clubpenalty", "widowpenalty", "displaywidowpenalty",
	"brokenpenalty", "binoppenalty", "relpenalty", "predisplaypenalty",
	"postdisplaypenalty", "interlinepenalty", "doublehyphendemerits",
	"finalhyphendemerits", "adjdemerits", "mag", "delimiterfactor",
	"looseness", "time", "day", "month", "year", "showboxbreadth",
	"showboxdepth", "hbadness", "vbadness", "pausing", "tracingonline",
	"tracingmacros", "tracingstats", "tracingparagraphs", "tracingpages",
	"tracingoutput", "tracinglostchars", "tracingcommands",
	"tracingrestores", "tracingassigns", "tracinggroups", "uchyph",
	"outputpenalty", "maxdeadcycles", "hangafter", "floatingpenalty",
	"globaldefs", "fam", "escapechar", "defaulthyphenchar",
	"defaultskewchar", "endlinechar", "newlinechar", "language",
	"lefthyphenmin", "righthyphenmin", "holdinginserts", "errorcontextlines",
}

// integerDefaults lists the integer parameters which INITEX does not
// set to zero.
var integerDefaults = map[string]int{
	"tolerance":     10000,
	"mag":           1000,
	"maxdeadcycles": 25,
	"escapechar":    '\\',
	"endlinechar":   '\r',
	"hangafter":     1,
	"newlinechar":   -1,
}

// The dimension parameters of TeX.
var dimenParams = []string{
	"parindent", "mathsurround", "lineskiplimit", "hsize", "vsize",
	"maxdepth", "splitmaxdepth", "boxmaxdepth", "hfuzz", "vfuzz",
	"delimitershortfall", "nulldelimiterspace", "scriptspace",
	"predisplaysize", "displaywidth", "displayindent", "overfullrule",
	"hangindent", "hoffset", "voffset", "emergencystretch",
}

// The glue parameters of TeX.
var glueParams = []string{
	"baselineskip", "lineskip", "parskip", "abovedisplayskip",
	"belowdisplayskip", "abovedisplayshortskip", "belowdisplayshortskip",
	"leftskip", "rightskip", "topskip", "splittopskip", "tabskip",
	"spaceskip", "xspaceskip", "parfillskip",
}

// The muglue parameters of TeX.  These are stored in the glue
// parameter table.
var muglueParams = []string{
	"thinmuskip", "medmuskip", "thickmuskip",
}

// The token list parameters of TeX.
var tokenParams = []string{
	"output", "everypar", "everymath", "everydisplay", "everyhbox",
	"everyvbox", "everyjob", "everycr", "errhelp",
}

func (d *Document) defineParams() {
	for _, name := range integerParams {
		d.store(ControlKey(name), &Register{Key: ParamKey(TableInteger, name)})
	}
	for _, name := range dimenParams {
		d.store(ControlKey(name), &Register{Key: ParamKey(TableDimenParam, name)})
	}
	for _, name := range glueParams {
		d.store(ControlKey(name), &Register{Key: ParamKey(TableGlueParam, name)})
	}
	for _, name := range muglueParams {
		d.store(ControlKey(name), &Register{Key: ParamKey(TableGlueParam, name)})
	}
	for _, name := range tokenParams {
		d.store(ControlKey(name), &Register{Key: ParamKey(TableTokensParam, name)})
	}
}
