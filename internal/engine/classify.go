package engine

import "strings"

// Keyword lists, checked in this priority order by Classify.
var (
	introspectKeywords = []string{
		"je me sens", "j'ai besoin", "je ressens", "j'ai peur", "je doute",
		"je suis fier", "je me demande", "pourquoi je", "j'aimerais être",
		"je me blâme", "je m'inquiète", "je regrette", "je réalise",
		"mes émotions", "mon état", "mes pensées", "ma confiance",
		"accepter", "pardonner", "grandir", "apprendre", "comprendre",
		"gratitude", "reconnaissance", "fierté", "vulnérabilité", "authenticité",
	}

	todoKeywords = []string{
		"appeler", "faire", "payer", "acheter", "terminer", "envoyer",
		"prendre rdv", "rappeler", "écrire", "préparer", "suivre",
		"nettoyer", "répondre", "finir", "commencer", "organiser",
		"planifier", "réserver", "confirmer", "vérifier", "envoyer mail",
	}

	delegateKeywords = []string{
		"demander", "partager", "assigner", "transmettre", "envoyer à",
		"prévenir", "faire faire", "donner à", "soumettre", "déléguer",
		"confier", "passer à", "dire à", "informer",
	}
)

// Classify picks a category for text. A non-empty manual category always wins.
//
// Matching is plain substring containment on the lower-cased text, so a word that
// merely contains a keyword ("parfaire" contains "faire") still matches.
func Classify(text string, manual Category) Category {
	if manual != "" {
		return manual
	}

	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case containsAny(t, introspectKeywords):
		return CategoryIntrospect
	case containsAny(t, todoKeywords):
		return CategoryTodo
	case containsAny(t, delegateKeywords):
		return CategoryDelegate
	default:
		return CategoryForget
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
