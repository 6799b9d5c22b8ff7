// Package labels translates the pipeline's internal codes (risk labels,
// stances, scenario and domain codes, source types, emotions, action
// priorities and categories) into display strings for the exported
// document.
//
// Design decision: Every lookup is a fixed map with an explicit
// use-the-raw-code default branch. Unknown codes must never be dropped
// or error out: the pipeline grows new codes faster than this table,
// and a raw code in the document is more useful than a hole. The empty
// code renders as "-" so attribute tables never contain blank cells.
package labels

// Translator maps internal codes to display strings. The report writers
// consume this interface so callers can substitute their own dictionary
// (a different language, or a passthrough for testing).
type Translator interface {
	RiskLabel(code string) string
	RiskLevel(code string) string
	Stance(code string) string
	SimulationStance(code string) string
	Scenario(code string) string
	Domain(code string) string
	SourceType(code string) string
	Emotion(code string) string
	Priority(code string) string
	Category(code string) string
}

// Chinese is the default Translator, carrying the product's Simplified
// Chinese dictionaries.
type Chinese struct{}

// NewChinese returns the default Chinese translator.
func NewChinese() Chinese { return Chinese{} }

var riskLabels = map[string]string{
	"credible":              "可信",
	"suspicious":            "可疑",
	"high_risk":             "高风险",
	"needs_context":         "需要补充语境",
	"likely_misinformation": "疑似不实信息",
}

var riskLevels = map[string]string{
	"low":      "低",
	"medium":   "中",
	"high":     "高",
	"critical": "严重",
}

var stances = map[string]string{
	"support":               "支持",
	"supportive":            "支持",
	"oppose":                "反对",
	"opposing":              "反对",
	"refute":                "反驳",
	"insufficient":          "证据不足",
	"insufficient_evidence": "证据不足",
	"doubt":                 "质疑",
	"mixed":                 "混合",
	"neutral":               "中立",
}

var simulationStances = map[string]string{
	"supportive": "支持",
	"opposing":   "反对",
	"neutral":    "中立",
	"skeptical":  "质疑",
	"mixed":      "混合",
	"dismissive": "否定",
	"curious":    "好奇",
}

var scenarios = map[string]string{
	"general":    "通用",
	"health":     "医疗健康",
	"governance": "政务治理",
	"security":   "公共安全",
	"media":      "媒体传播",
	"technology": "科技产业",
	"education":  "教育校园",
}

var domains = map[string]string{
	"health":     "医疗健康",
	"governance": "政务治理",
	"security":   "公共安全",
	"media":      "媒体传播",
	"technology": "科技产业",
	"education":  "教育校园",
	"general":    "通用",
}

var sourceTypes = map[string]string{
	"local_kb":    "本地知识库",
	"web_live":    "联网检索",
	"web_summary": "联网聚合",
}

var emotions = map[string]string{
	"anger":        "愤怒",
	"fear":         "恐惧",
	"sadness":      "悲伤",
	"surprise":     "惊讶",
	"neutral":      "中性",
	"joy":          "喜悦",
	"disgust":      "厌恶",
	"anticipation": "期待",
	"trust":        "信任",
}

var priorities = map[string]string{
	"urgent": "紧急",
	"high":   "高",
	"medium": "中",
}

var categories = map[string]string{
	"official": "官方",
	"media":    "媒体",
	"platform": "平台",
	"user":     "用户",
}

// translate looks code up in mapping, falling back to the raw code for
// unknown codes and to "-" for the empty code.
func translate(code string, mapping map[string]string) string {
	if code == "" {
		return "-"
	}
	if text, ok := mapping[code]; ok {
		return text
	}
	return code
}

// RiskLabel translates a risk label code.
func (Chinese) RiskLabel(code string) string { return translate(code, riskLabels) }

// RiskLevel translates a risk level code.
func (Chinese) RiskLevel(code string) string { return translate(code, riskLevels) }

// Stance translates a claim or evidence stance code.
func (Chinese) Stance(code string) string { return translate(code, stances) }

// SimulationStance translates a simulated-audience stance code. Codes
// missing from the simulation dictionary fall back to the claim stance
// dictionary before passing through raw, because the simulator reuses
// some claim stance codes.
func (Chinese) SimulationStance(code string) string {
	if code == "" {
		return "-"
	}
	if text, ok := simulationStances[code]; ok {
		return text
	}
	return translate(code, stances)
}

// Scenario translates a detected scenario code.
func (Chinese) Scenario(code string) string { return translate(code, scenarios) }

// Domain translates an evidence domain code.
func (Chinese) Domain(code string) string { return translate(code, domains) }

// SourceType translates an evidence source type code.
func (Chinese) SourceType(code string) string { return translate(code, sourceTypes) }

// Emotion translates an emotion code.
func (Chinese) Emotion(code string) string { return translate(code, emotions) }

// Priority translates an action priority code.
func (Chinese) Priority(code string) string { return translate(code, priorities) }

// Category translates an action category code.
func (Chinese) Category(code string) string { return translate(code, categories) }
