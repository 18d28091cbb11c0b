package library

import "duesseldorf-family-adventures/internal/models"

// builtinItems is the vetted offline library. Every entry carries domain
// tags, materials and safety notes so suggestions stay self-explanatory
// without any generator call.
var builtinItems = []Item{
	{
		ID:            "lib-naturbingo",
		Title:         "Natur-Bingo im Park",
		Description:   "Eine Suchliste mit Blatt, Stein, Feder und Zapfen abhaken, bis die Reihe voll ist.",
		DomainTags:    []string{"nature", "learning"},
		AgeMinYears:   3.0,
		AgeMaxYears:   9.0,
		IndoorOutdoor: models.LocationOutdoor,
		DurationMin:   45,
		Materials:     []string{"Suchliste", "Stift"},
		SafetyNotes:   []string{"Funde nur anschauen, nicht in den Mund nehmen."},
		Effort:        models.EffortMedium,
	},
	{
		ID:               "lib-bewegungswuerfel",
		Title:            "Bewegungswürfel-Parcours",
		Description:      "Ein Würfel bestimmt die nächste Übung: hüpfen, kriechen, drehen, balancieren.",
		DomainTags:       []string{"movement", "social"},
		AgeMinYears:      2.5,
		AgeMaxYears:      8.0,
		IndoorOutdoor:    models.LocationMixed,
		DurationMin:      30,
		Materials:        []string{"Schaumstoffwürfel", "Kreide"},
		SafetyNotes:      []string{"Freie Fläche ohne Kanten wählen."},
		Effort:           models.EffortHigh,
		EstimatedCostEur: 5.0,
	},
	{
		ID:            "lib-schattentheater",
		Title:         "Schattentheater an der Wand",
		Description:   "Mit Handfiguren und einer Lampe Geschichten an die Wand spielen.",
		DomainTags:    []string{"creative", "language"},
		AgeMinYears:   2.0,
		AgeMaxYears:   7.0,
		IndoorOutdoor: models.LocationIndoor,
		DurationMin:   30,
		Materials:     []string{"Taschenlampe", "Weiße Wand"},
		SafetyNotes:   []string{"Lampe nicht in die Augen richten."},
		Effort:        models.EffortLow,
	},
	{
		ID:            "lib-wetterstation",
		Title:         "Kleine Wetterstation bauen",
		Description:   "Regenmesser aus einer Flasche und Windanzeiger aus Bändern bauen und täglich ablesen.",
		DomainTags:    []string{"nature", "learning", "creative"},
		AgeMinYears:   4.0,
		AgeMaxYears:   10.0,
		IndoorOutdoor: models.LocationMixed,
		DurationMin:   60,
		Materials:     []string{"Plastikflasche", "Bänder", "Klebeband"},
		SafetyNotes:   []string{"Flaschenrand mit Klebeband abdecken."},
		Effort:        models.EffortMedium,
	},
	{
		ID:               "lib-picknickrallye",
		Title:            "Picknick-Rallye",
		Description:      "Auf dem Weg zum Picknickplatz kleine Aufgaben lösen: Farben suchen, Schritte zählen, Geräusche raten.",
		DomainTags:       []string{"movement", "nature", "social"},
		AgeMinYears:      3.0,
		AgeMaxYears:      9.0,
		IndoorOutdoor:    models.LocationOutdoor,
		DurationMin:      90,
		Materials:        []string{"Picknickdecke", "Brotdose"},
		SafetyNotes:      []string{"Rastplätze abseits von Wegen wählen."},
		Effort:           models.EffortMedium,
		EstimatedCostEur: 10.0,
	},
	{
		ID:            "lib-klanggeschichte",
		Title:         "Klanggeschichte erfinden",
		Description:   "Eine Geschichte erzählen und jede Figur mit einem Alltagsklang begleiten.",
		DomainTags:    []string{"language", "creative", "mindfulness"},
		AgeMinYears:   2.0,
		AgeMaxYears:   6.0,
		IndoorOutdoor: models.LocationIndoor,
		DurationMin:   25,
		Materials:     []string{"Töpfe", "Holzlöffel", "Rasseldose"},
		SafetyNotes:   []string{"Lautstärke an empfindliche Ohren anpassen."},
		Effort:        models.EffortLow,
	},
	{
		ID:               "lib-gartenforscher",
		Title:            "Gartenforscher mit Becherlupe",
		Description:      "Käfer, Asseln und Würmer mit der Becherlupe beobachten und wieder freilassen.",
		DomainTags:       []string{"nature", "learning"},
		AgeMinYears:      3.0,
		AgeMaxYears:      10.0,
		IndoorOutdoor:    models.LocationOutdoor,
		DurationMin:      40,
		Materials:        []string{"Becherlupe", "Bestimmungskarte"},
		SafetyNotes:      []string{"Tiere behutsam behandeln und freilassen."},
		Effort:           models.EffortLow,
		EstimatedCostEur: 8.0,
	},
	{
		ID:            "lib-turnhallenzirkus",
		Title:         "Wohnzimmer-Zirkus",
		Description:   "Eine kleine Zirkusvorstellung mit Balancieren, Purzelbaum und Verbeugung einüben.",
		DomainTags:    []string{"movement", "creative", "social"},
		AgeMinYears:   2.5,
		AgeMaxYears:   7.0,
		IndoorOutdoor: models.LocationIndoor,
		DurationMin:   45,
		Materials:     []string{"Matte oder Decke", "Seil als Manege"},
		SafetyNotes:   []string{"Purzelbäume nur auf weichem Untergrund."},
		Effort:        models.EffortHigh,
	},
}
