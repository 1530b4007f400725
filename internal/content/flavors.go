package content

// FlavorLabels maps content-track keys to their friendly display names.
var FlavorLabels = map[string]string{
	"secular":            "Supportive (Secular)",
	"cultural_nusantara": "Nusantara Wisdom",
	"islam":              "Spiritual (Islam)",
	"christian":          "Spiritual (Christian)",
	"hindu":              "Spiritual (Hindu)",
	"buddhist":           "Spiritual (Buddhist)",
}

// FlavorLabel returns the friendly label, or the key itself when unknown.
func FlavorLabel(key string) string {
	if label, ok := FlavorLabels[key]; ok {
		return label
	}
	return key
}
