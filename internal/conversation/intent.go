package conversation

import "strings"

// keywordSet binds an intent to the lower-case keywords that select it.
type keywordSet struct {
	intent   Intent
	keywords []string
}

// intentKeywords is evaluated top to bottom and the first set with a match wins.
// "inscription" appears under both preinscription and calendrier; preinscription
// is checked first so it always takes that keyword.
var intentKeywords = []keywordSet{
	{IntentPreinscription, []string{"préinscription", "preinscription", "m'inscrire", "inscription", "postuler", "candidature"}},
	{IntentProgrammes, []string{"programme", "filière", "formation", "licence", "master", "cursus", "étude"}},
	{IntentFrais, []string{"frais", "coût", "prix", "payer", "paiement", "combien", "tarif"}},
	{IntentAdmission, []string{"admission", "condition", "requis", "document", "dossier", "exigence"}},
	{IntentCalendrier, []string{"date", "quand", "rentrée", "calendrier", "délai", "inscription"}},
	{IntentContact, []string{"contact", "téléphone", "email", "adresse", "localisation", "où"}},
	{IntentSalutation, []string{"bonjour", "salut", "bonsoir", "hello", "hey", "coucou"}},
	{IntentAide, []string{"aide", "aider", "comment", "info", "information", "renseigner"}},
}

// Classify maps a free-text message to an intent by keyword containment.
// Matching is plain substring search on the lower-cased message, so "informations"
// matches "info". Messages without any keyword, including empty ones, are general.
func Classify(message string) Intent {
	m := strings.ToLower(message)
	if strings.TrimSpace(m) == "" {
		return IntentGeneral
	}
	for _, set := range intentKeywords {
		if containsAny(m, set.keywords) {
			return set.intent
		}
	}
	return IntentGeneral
}

// ParseIntent validates a label string.
func ParseIntent(s string) (Intent, bool) {
	in := Intent(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Intents {
		if in == known {
			return known, true
		}
	}
	return IntentGeneral, false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
