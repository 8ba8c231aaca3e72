package assistant

import (
	"regexp"
	"strings"
)

// Condition matches the text of a user message.
type Condition struct {
	Operator string `json:"operator"` // equals, contains, word, starts_with, regex
	Value    string `json:"value"`
}

// Rule maps a set of keyword conditions to a canned response. A rule
// matches when any of its conditions does.
type Rule struct {
	Name       string      `json:"name"`
	Conditions []Condition `json:"conditions"`
	Response   string      `json:"response"`
}

// Rules is an ordered dispatch table; the first matching rule wins.
type Rules []Rule

func (rs Rules) match(message string) (Rule, bool) {
	for _, r := range rs {
		for _, c := range r.Conditions {
			if matchKeyword(message, c.Operator, c.Value) {
				return r, true
			}
		}
	}
	return Rule{}, false
}

func matchKeyword(message, operator, value string) bool {
	message = strings.ToLower(strings.TrimSpace(message))
	value = strings.ToLower(value)

	switch operator {
	case "equals":
		return message == value
	case "contains", "":
		return strings.Contains(message, value)
	case "word":
		return wordPattern(value).MatchString(message)
	case "starts_with":
		return strings.HasPrefix(message, value)
	case "regex":
		matched, err := regexp.MatchString(value, message)
		if err != nil {
			return false
		}
		return matched
	default:
		return false
	}
}

// wordPattern matches value as a whole word or phrase, allowing a plural "s".
// "rent" matches "rent" and "rents" but not "current" or "parents".
func wordPattern(value string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(value) + `s?\b`)
}

func words(ws ...string) []Condition {
	out := make([]Condition, len(ws))
	for i, w := range ws {
		out[i] = Condition{Operator: "word", Value: w}
	}
	return out
}

// FallbackResponse is sent when no rule matches.
const FallbackResponse = "Thank you for your question. I can share general information on RTI applications, " +
	"property and tenancy disputes, family matters, consumer complaints, labour rights, police complaints and bail. " +
	"Please describe your issue in a little more detail, or book a consultation with one of our volunteer lawyers " +
	"for advice on your specific case."

// DefaultRules is the legal-aid dispatch table shown on the consultation page.
// Keywords match whole words, and tenancy is checked before property so a
// rent dispute over land gets the tenancy answer.
func DefaultRules() Rules {
	return Rules{
		{
			Name:       "rti",
			Conditions: words("rti", "right to information"),
			Response:   "Under the Right to Information Act, 2005 you can request information from any public authority. " +
				"Submit a written application to the Public Information Officer with the prescribed fee (Rs. 10 for most " +
				"central authorities). A reply is due within 30 days; if you get none, you can file a first appeal " +
				"within 30 days of the deadline.",
		},
		{
			Name:       "tenant",
			Conditions: words("tenant", "landlord", "rent", "evict", "eviction"),
			Response:   "A landlord generally cannot evict a tenant without notice and a valid ground under the state rent " +
				"control law. Keep copies of the rent agreement and payment receipts. If you are being forced out " +
				"without a court order, you may approach the local police and the rent controller.",
		},
		{
			Name:       "property",
			Conditions: words("property", "properties", "land", "inheritance"),
			Response:   "For property disputes, first collect the title deed, sale agreement, mutation records and tax " +
				"receipts. Many disputes can be settled through mediation or Lok Adalat before going to a civil court. " +
				"Inheritance follows the personal law that applies to the deceased, so the answer depends on religion " +
				"and on whether a will exists.",
		},
		{
			Name:       "family",
			Conditions: words("divorce", "marriage", "custody", "maintenance", "domestic violence"),
			Response:   "Family matters such as divorce, maintenance and child custody are heard by the Family Court. " +
				"Mutual consent divorce is usually the fastest route. If you face domestic violence, you can seek a " +
				"protection order under the Protection of Women from Domestic Violence Act through a Protection Officer " +
				"or the Magistrate.",
		},
		{
			Name:       "consumer",
			Conditions: words("consumer", "refund", "defective", "warranty"),
			Response:   "You can file a consumer complaint with the District Consumer Commission for claims up to Rs. 1 crore, " +
				"online through the e-Daakhil portal. Keep the invoice, warranty card and any written communication " +
				"with the seller. Complaints should be filed within two years of the cause of action.",
		},
		{
			Name:       "labour",
			Conditions: words("salary", "salaries", "wages", "employer", "labour", "labor", "termination"),
			Response:   "Unpaid wages and wrongful termination can be raised with the Labour Commissioner of your district. " +
				"Keep your appointment letter, salary slips and bank statements. Many disputes are resolved at the " +
				"conciliation stage before they reach the Labour Court.",
		},
		{
			Name:       "police",
			Conditions: words("fir", "police", "complaint against"),
			Response:   "The police must register an FIR for a cognizable offence. If they refuse, send the complaint in " +
				"writing to the Superintendent of Police, or approach the Magistrate under Section 156(3) CrPC. You " +
				"are entitled to a free copy of the FIR.",
		},
		{
			Name:       "bail",
			Conditions: words("bail", "arrest", "arrested"),
			Response:   "For bailable offences, bail is a right and can be granted by the police or the court. For non-bailable " +
				"offences, bail is at the court's discretion. If you expect an arrest, you may apply for anticipatory " +
				"bail before the Sessions Court or High Court. Free legal aid is available through the District Legal " +
				"Services Authority.",
		},
	}
}
