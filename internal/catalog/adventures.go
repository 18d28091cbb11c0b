package catalog

import "duesseldorf-family-adventures/internal/models"

// builtinAdventures is the curated collection around Volksgarten and
// Südpark. Texts stay free of open-flame, blade and small-part wording
// so every entry can pass the safety gate unmodified.
var builtinAdventures = []models.MicroAdventure{
	{
		Slug:            "volksgarten-entenrunde",
		Title:           "Entenrunde am Volksgarten-Weiher",
		Area:            "Volksgarten",
		Short:           "Gemütliche Runde um den Weiher mit Entenbeobachtung und Uferstopps.",
		DurationMinutes: 45,
		DistanceKm:      1.4,
		BestTime:        "vormittags",
		StrollerOK:      true,
		StartPoint:      "Eingang Volksgartenstraße",
		RouteSteps: []string{
			"Vom Eingang rechts halten und dem Uferweg folgen.",
			"Am flachen Ufer anhalten und die Enten beobachten.",
			"Auf der Wiese hinter dem Weiher eine Bewegungspause machen.",
			"Über die kleine Brücke zurück zum Eingang gehen.",
		},
		Preparation:     []string{"Wettervorhersage prüfen", "Wechselkleidung einpacken"},
		PackingList:     []string{"Wasserflasche", "Snack", "Matschhose"},
		ExecutionTips:   []string{"Dem Tempo des Kindes folgen", "Uferstopps nicht abkürzen"},
		Variations:      []string{"Mit dem Laufrad auf dem breiten Weg fahren."},
		ToddlerBenefits: []string{"Grobmotorik", "Sprache", "Naturwissen"},
		ParentTip:       "Die Enten benennen lassen und jede Antwort in einem ganzen Satz wiederholen.",
		Risks:           []string{"Offenes Ufer", "Rutschige Wege nach Regen"},
		Mitigations:     []string{"Am Ufer an der Hand führen.", "Bei Nässe auf dem befestigten Weg bleiben."},
		Tags:            []string{"Natur", "Wasser", "Tiere", "Spaziergang"},
		Accessibility:   []string{"Kinderwagentauglich", "Bänke am Weg"},
		SeasonTags:      []string{models.SeasonSpring, models.SeasonSummer, models.SeasonAutumn},
		WeatherTags:     []string{models.WeatherTagSun, models.WeatherTagCloudy},
		EnergyLevel:     models.EnergyLow,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          1.0,
		AgeMax:          6.0,
		MoodTags:        []string{"ruhig", "neugierig"},
		SafetyLevel:     models.SafetyMedium,
	},
	{
		Slug:            "suedpark-tiergehege",
		Title:           "Tiergehege-Tour im Südpark",
		Area:            "Südpark",
		Short:           "Besuch bei Eseln, Ziegen und Schafen im Tiergehege am Südpark.",
		DurationMinutes: 60,
		DistanceKm:      1.8,
		BestTime:        "vormittags",
		StrollerOK:      true,
		StartPoint:      "Eingang Werstener Feld",
		RouteSteps: []string{
			"Vom Eingang dem Hauptweg zum Tiergehege folgen.",
			"An jedem Gehege anhalten und das Tier benennen.",
			"Die Fütterungszeiten auf der Tafel gemeinsam anschauen.",
			"Über den Spielplatzweg zurückgehen.",
		},
		Preparation:     []string{"Hände-Hygiene besprechen"},
		PackingList:     []string{"Wasserflasche", "Feuchttücher"},
		ExecutionTips:   []string{"Tiere nur schauen, nicht füttern", "Nach dem Besuch Hände waschen"},
		Variations:      []string{"Nur die ersten zwei Gehege besuchen (ruhiger Vormittag)."},
		ToddlerBenefits: []string{"Sprache", "Sozial-emotional", "Naturwissen"},
		ParentTip:       "Tiergeräusche nachmachen und das Kind raten lassen.",
		Risks:           []string{"Gedränge am Wochenende"},
		Mitigations:     []string{"Unter der Woche oder früh am Tag kommen."},
		Tags:            []string{"Tiere", "Natur", "Lernen"},
		Accessibility:   []string{"Kinderwagentauglich", "Barrierefreie Wege"},
		SeasonTags:      []string{models.SeasonSpring, models.SeasonSummer, models.SeasonAutumn, models.SeasonWinter},
		WeatherTags:     []string{models.WeatherTagSun, models.WeatherTagCloudy, models.WeatherTagCold},
		EnergyLevel:     models.EnergyLow,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          1.0,
		AgeMax:          7.0,
		MoodTags:        []string{"neugierig", "ruhig"},
		SafetyLevel:     models.SafetyLow,
	},
	{
		Slug:            "volksgarten-blaetterjagd",
		Title:           "Blätterjagd im Volksgarten",
		Area:            "Volksgarten",
		Short:           "Sammelrunde: die größten, kleinsten und buntesten Blätter finden.",
		DurationMinutes: 40,
		DistanceKm:      1.0,
		BestTime:        "nachmittags",
		StrollerOK:      true,
		StartPoint:      "Spielwiese am Rosengarten",
		RouteSteps: []string{
			"Eine Sammeltasche oder Jackentasche als Fundkiste bestimmen.",
			"Unter drei verschiedenen Bäumen je ein Blatt suchen.",
			"Die Funde auf einer Bank nach Größe sortieren.",
			"Das Lieblingsblatt mit nach Hause nehmen.",
		},
		Preparation:     []string{"Sammeltasche einpacken"},
		PackingList:     []string{"Sammeltasche", "Wasserflasche"},
		ExecutionTips:   []string{"Blätter vom Boden nehmen, nicht pflücken"},
		Variations:      []string{"Im Winter Zapfen und Stöcke statt Blätter sammeln."},
		ToddlerBenefits: []string{"Feinmotorik", "Kognitiv", "Naturwissen"},
		ParentTip:       "Beim Sortieren laut zählen und Vergleichswörter wie größer und kleiner benutzen.",
		Risks:           []string{"Nasses Laub ist rutschig"},
		Mitigations:     []string{"Auf den Wegen bleiben und langsam gehen."},
		Tags:            []string{"Natur", "Sammeln", "Herbst", "Sortieren"},
		Accessibility:   []string{"Kinderwagentauglich"},
		SeasonTags:      []string{models.SeasonAutumn},
		WeatherTags:     []string{models.WeatherTagCloudy, models.WeatherTagWind},
		EnergyLevel:     models.EnergyMedium,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          1.5,
		AgeMax:          6.0,
		MoodTags:        []string{"neugierig"},
		SafetyLevel:     models.SafetyLow,
	},
	{
		Slug:            "suedpark-barfusspfad",
		Title:           "Barfußpfad-Erkundung im Südpark",
		Area:            "Südpark",
		Short:           "Sand, Rindenmulch und Steine mit den Füßen ertasten.",
		DurationMinutes: 35,
		DistanceKm:      0.6,
		BestTime:        "mittags",
		StrollerOK:      false,
		StartPoint:      "Barfußpfad nahe In den Großen Banden",
		RouteSteps: []string{
			"Schuhe ausziehen und an einem festen Platz ablegen.",
			"Jeden Abschnitt langsam gehen und das Gefühl benennen.",
			"Den Lieblingsabschnitt ein zweites Mal gehen.",
			"Füße abwischen und Schuhe wieder anziehen.",
		},
		Preparation:     []string{"Handtuch einpacken"},
		PackingList:     []string{"Handtuch", "Wasserflasche"},
		ExecutionTips:   []string{"Vorher den Pfad auf Scherbenfreiheit anschauen"},
		Variations:      []string{"Mit geschlossenen Augen raten, worauf man steht."},
		ToddlerBenefits: []string{"Sensorik", "Grobmotorik", "Sprache"},
		ParentTip:       "Selbst mitmachen und eigene Eindrücke beschreiben, das Kind übernimmt die Wörter.",
		Risks:           []string{"Stolpern auf unebenem Grund"},
		Mitigations:     []string{"An der Hand gehen und Abschnitte langsam nehmen."},
		Tags:            []string{"Sinne", "Natur", "Barfuß"},
		SeasonTags:      []string{models.SeasonSpring, models.SeasonSummer},
		WeatherTags:     []string{models.WeatherTagSun, models.WeatherTagHot},
		EnergyLevel:     models.EnergyLow,
		Difficulty:      models.DifficultyMedium,
		AgeMin:          2.0,
		AgeMax:          6.0,
		MoodTags:        []string{"ruhig", "neugierig"},
		SafetyLevel:     models.SafetyMedium,
	},
	{
		Slug:            "volksgarten-pfuetzenexpedition",
		Title:           "Pfützenexpedition nach dem Regen",
		Area:            "Volksgarten",
		Short:           "In Matschkleidung von Pfütze zu Pfütze springen und Spiegelbilder suchen.",
		DurationMinutes: 30,
		DistanceKm:      0.8,
		BestTime:        "nach dem Regen",
		StrollerOK:      true,
		StartPoint:      "Eingang Auf'm Hennekamp",
		RouteSteps: []string{
			"Die erste Pfütze suchen und vorsichtig hineintreten.",
			"In jeder Pfütze nach dem eigenen Spiegelbild schauen.",
			"Einen Wettbewerb machen: kleiner Sprung, großer Sprung.",
			"Zum Abschluss die tiefste Pfütze mit einem Stock ausmessen.",
		},
		Preparation:     []string{"Matschhose und Gummistiefel anziehen", "Wechselkleidung einpacken"},
		PackingList:     []string{"Gummistiefel", "Wechselkleidung", "Handtuch"},
		ExecutionTips:   []string{"Pfützen auf festen Wegen wählen"},
		Variations:      []string{"Blätter als Boote in die Pfütze setzen."},
		ToddlerBenefits: []string{"Grobmotorik", "Sensorik", "Selbstvertrauen"},
		ParentTip:       "Jeden Sprung kommentieren, das Kind hört die Bewegungswörter.",
		Risks:           []string{"Durchnässung", "Auskühlen"},
		Mitigations:     []string{"Zeit begrenzen und trockene Kleidung bereithalten."},
		Tags:            []string{"Regen", "Wasser", "Bewegung", "Matschen"},
		SeasonTags:      []string{models.SeasonSpring, models.SeasonAutumn},
		WeatherTags:     []string{models.WeatherTagRain, models.WeatherTagCloudy},
		EnergyLevel:     models.EnergyHigh,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          1.5,
		AgeMax:          5.0,
		MoodTags:        []string{"wild", "fröhlich"},
		SafetyLevel:     models.SafetyMedium,
	},
	{
		Slug:            "suedpark-gaertnereien",
		Title:           "Gärtnerei-Spaziergang durchs Mustergärtenareal",
		Area:            "Südpark",
		Short:           "Durch die Mustergärten schlendern, Farben und Düfte entdecken.",
		DurationMinutes: 50,
		DistanceKm:      1.5,
		BestTime:        "vormittags",
		StrollerOK:      true,
		StartPoint:      "Eingang Südpark Mustergärten",
		RouteSteps: []string{
			"Im ersten Garten drei verschiedene Blütenfarben suchen.",
			"An einem Duftbeet anhalten und vorsichtig riechen.",
			"Im Staudengarten Hummeln und Schmetterlinge zählen.",
			"Am Ende den Lieblingsgarten noch einmal besuchen.",
		},
		Preparation:     []string{"Sonnenschutz bei klarem Himmel"},
		PackingList:     []string{"Wasserflasche", "Sonnenhut"},
		ExecutionTips:   []string{"Beete nur anschauen, nicht betreten"},
		Variations:      []string{"Eine Farbe vorgeben und nur danach suchen."},
		ToddlerBenefits: []string{"Sensorik", "Sprache", "Kognitiv"},
		ParentTip:       "Farbwörter und Duftwörter anbieten, das Kind wählt sein Lieblingswort.",
		Risks:           []string{"Insektenstiche an den Beeten"},
		Mitigations:     []string{"Abstand zu Blüten mit vielen Hummeln halten."},
		Tags:            []string{"Natur", "Farben", "Garten", "Ruhe"},
		Accessibility:   []string{"Kinderwagentauglich", "Barrierefreie Wege"},
		SeasonTags:      []string{models.SeasonSpring, models.SeasonSummer},
		WeatherTags:     []string{models.WeatherTagSun},
		EnergyLevel:     models.EnergyLow,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          1.0,
		AgeMax:          6.0,
		MoodTags:        []string{"ruhig"},
		SafetyLevel:     models.SafetyLow,
	},
	{
		Slug:            "volksgarten-kletterbaumstamm",
		Title:           "Balancieren am liegenden Baumstamm",
		Area:            "Volksgarten",
		Short:           "Auf den liegenden Stämmen an der großen Wiese balancieren und klettern.",
		DurationMinutes: 40,
		DistanceKm:      0.5,
		BestTime:        "nachmittags",
		StrollerOK:      true,
		StartPoint:      "Große Wiese, Südseite",
		RouteSteps: []string{
			"Den niedrigsten Stamm zuerst nehmen und an der Hand balancieren.",
			"Auf dem Stamm stehen bleiben und bis drei zählen.",
			"Am dicken Stamm hochklettern und wieder herunterspringen.",
			"Zum Abschluss eine Runde um alle Stämme rennen.",
		},
		Preparation:     []string{"Feste Schuhe anziehen"},
		PackingList:     []string{"Wasserflasche", "Pflasterset"},
		ExecutionTips:   []string{"Sprunghöhe ans Kind anpassen"},
		Variations:      []string{"Rückwärts balancieren für Geübte."},
		ToddlerBenefits: []string{"Grobmotorik", "Selbstvertrauen", "Körpergefühl"},
		ParentTip:       "Nicht hochheben, sondern Hilfestellung an der Hand geben, das Kind steuert selbst.",
		Risks:           []string{"Sturz vom Stamm"},
		Mitigations:     []string{"Immer in Griffweite bleiben und bei Nässe auslassen."},
		Tags:            []string{"Bewegung", "Klettern", "Balance", "Natur"},
		SeasonTags:      []string{models.SeasonSpring, models.SeasonSummer, models.SeasonAutumn},
		WeatherTags:     []string{models.WeatherTagSun, models.WeatherTagCloudy},
		EnergyLevel:     models.EnergyHigh,
		Difficulty:      models.DifficultyMedium,
		AgeMin:          2.0,
		AgeMax:          6.0,
		MoodTags:        []string{"wild", "mutig"},
		SafetyLevel:     models.SafetyElevated,
	},
	{
		Slug:            "suedpark-windraeder",
		Title:           "Windtag im Südpark",
		Area:            "Südpark",
		Short:           "An einem windigen Tag Windräder, Gräser und Drachen beobachten.",
		DurationMinutes: 45,
		DistanceKm:      1.2,
		BestTime:        "nachmittags",
		StrollerOK:      true,
		StartPoint:      "Große Festwiese",
		RouteSteps: []string{
			"Auf der Festwiese spüren, aus welcher Richtung der Wind kommt.",
			"Hohe Gräser suchen und zuschauen, wie sie sich biegen.",
			"Ein leichtes Tuch in den Wind halten und flattern lassen.",
			"Gegen den Wind rennen und dann mit dem Wind zurück.",
		},
		Preparation:     []string{"Windjacke anziehen"},
		PackingList:     []string{"Leichtes Tuch", "Wasserflasche"},
		ExecutionTips:   []string{"Offene Fläche wählen, Abstand zu Bäumen halten"},
		Variations:      []string{"Ein Windrad von zu Hause mitbringen."},
		ToddlerBenefits: []string{"Sensorik", "Kognitiv", "Grobmotorik"},
		ParentTip:       "Fragen stellen wie: Wohin fliegt das Tuch? Das Kind sagt seine Vermutung vorher.",
		Risks:           []string{"Herabfallende Äste bei starkem Wind"},
		Mitigations:     []string{"Bei Sturmwarnung absagen, unter Bäumen nicht verweilen."},
		Tags:            []string{"Wind", "Natur", "Experiment", "Bewegung"},
		SeasonTags:      []string{models.SeasonAutumn, models.SeasonSpring},
		WeatherTags:     []string{models.WeatherTagWind, models.WeatherTagCloudy},
		EnergyLevel:     models.EnergyMedium,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          1.5,
		AgeMax:          6.0,
		MoodTags:        []string{"neugierig", "fröhlich"},
		SafetyLevel:     models.SafetyMedium,
	},
	{
		Slug:            "zuhause-kuschelhoehle",
		Title:           "Kuschelhöhle aus Decken bauen",
		Area:            "Zuhause",
		Short:           "Aus Decken, Kissen und Stühlen eine Höhle im Wohnzimmer bauen.",
		DurationMinutes: 40,
		DistanceKm:      0.0,
		BestTime:        "ganztägig",
		StrollerOK:      true,
		StartPoint:      "Wohnzimmer",
		RouteSteps: []string{
			"Zwei Stühle mit Abstand aufstellen und eine Decke darüberlegen.",
			"Den Boden der Höhle mit Kissen auslegen.",
			"Gemeinsam hineinkriechen und ein Bilderbuch anschauen.",
			"Mit der Taschenlampe Schattenfiguren an die Höhlendecke werfen.",
		},
		Preparation:     []string{"Decken und Kissen bereitlegen"},
		PackingList:     []string{"Decken", "Kissen", "Taschenlampe", "Bilderbuch"},
		ExecutionTips:   []string{"Stühle so stellen, dass nichts kippen kann"},
		Variations:      []string{"Die Höhle als Tierbau benennen und Tiergeschichten erzählen."},
		ToddlerBenefits: []string{"Sozial-emotional", "Sprache", "Kreativität"},
		ParentTip:       "Das Kind bestimmen lassen, wer in die Höhle einziehen darf.",
		Risks:           []string{"Kippende Stühle"},
		Mitigations:     []string{"Stabile Stühle wählen und den Aufbau prüfen."},
		Tags:            []string{"Drinnen", "Bauen", "Ruhe", "Vorlesen"},
		SeasonTags:      []string{models.SeasonWinter, models.SeasonAutumn},
		WeatherTags:     []string{models.WeatherTagRain, models.WeatherTagCold},
		EnergyLevel:     models.EnergyLow,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          1.0,
		AgeMax:          6.0,
		MoodTags:        []string{"ruhig", "kuschelig"},
		SafetyLevel:     models.SafetyLow,
	},
	{
		Slug:            "zuhause-reis-schuettstation",
		Title:           "Schüttstation am Küchentisch",
		Area:            "Zuhause",
		Short:           "Reis mit Bechern und Schüsseln umschütten, sieben und vergleichen.",
		DurationMinutes: 30,
		DistanceKm:      0.0,
		BestTime:        "ganztägig",
		StrollerOK:      true,
		StartPoint:      "Küchentisch",
		RouteSteps: []string{
			"Ein großes Tablett als Arbeitsfläche auf den Tisch legen.",
			"Reis aus der großen Schüssel in kleine Becher umschütten.",
			"Mit einem Löffel von Becher zu Becher füllen.",
			"Am Ende den Reis gemeinsam zurück in die Schüssel kehren.",
		},
		Preparation:     []string{"Tablett und Handfeger bereitstellen"},
		PackingList:     []string{"Reis", "Schüsseln", "Becher", "Löffel"},
		ExecutionTips:   []string{"Erwachsener bleibt die ganze Zeit dabei"},
		Variations:      []string{"Nudeln statt Reis für gröberes Greifen verwenden."},
		ToddlerBenefits: []string{"Feinmotorik", "Konzentration", "Sensorik"},
		ParentTip:       "Die Handgriffe beschreiben statt korrigieren, das Kind wiederholt die Abläufe selbst.",
		Risks:           []string{"Verschlucken bei sehr jungen Kindern"},
		Mitigations:     []string{"Nur unter Aufsicht und erst ab dem empfohlenen Alter spielen."},
		Tags:            []string{"Drinnen", "Sinne", "Konzentration", "Montessori"},
		SeasonTags:      []string{models.SeasonWinter, models.SeasonAutumn, models.SeasonSpring, models.SeasonSummer},
		WeatherTags:     []string{models.WeatherTagRain, models.WeatherTagCold, models.WeatherTagHot},
		EnergyLevel:     models.EnergyLow,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          3.0,
		AgeMax:          6.0,
		MoodTags:        []string{"ruhig", "konzentriert"},
		SafetyLevel:     models.SafetyMedium,
	},
	{
		Slug:            "volksgarten-abendlichter",
		Title:           "Abendlichter-Runde im Volksgarten",
		Area:            "Volksgarten",
		Short:           "In der Dämmerung Laternen, Fenster und Lichter entdecken.",
		DurationMinutes: 35,
		DistanceKm:      1.0,
		BestTime:        "abends",
		StrollerOK:      true,
		StartPoint:      "Eingang Volksgartenstraße",
		RouteSteps: []string{
			"Kurz vor der Dämmerung losgehen und das erste Licht suchen.",
			"Parklaternen zählen, die nacheinander angehen.",
			"Mit der Taschenlampe Lichtpunkte auf den Weg malen.",
			"Auf dem Rückweg leise Abendgeräusche sammeln.",
		},
		Preparation:     []string{"Taschenlampe laden", "Warme Jacke anziehen"},
		PackingList:     []string{"Taschenlampe", "Warme Jacke"},
		ExecutionTips:   []string{"Beleuchtete Hauptwege nehmen"},
		Variations:      []string{"Reflektoren am Kind befestigen und im Lampenlicht blinken lassen."},
		ToddlerBenefits: []string{"Sensorik", "Sprache", "Mut"},
		ParentTip:       "Flüstern statt reden, das Kind hört in der Dämmerung viel genauer hin.",
		Risks:           []string{"Stolpern im Dunkeln"},
		Mitigations:     []string{"Auf beleuchteten Wegen bleiben und langsam gehen."},
		Tags:            []string{"Abend", "Licht", "Ruhe", "Hören"},
		SeasonTags:      []string{models.SeasonWinter, models.SeasonAutumn},
		WeatherTags:     []string{models.WeatherTagCloudy, models.WeatherTagCold},
		EnergyLevel:     models.EnergyLow,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          2.0,
		AgeMax:          6.0,
		MoodTags:        []string{"ruhig", "mutig"},
		SafetyLevel:     models.SafetyMedium,
	},
	{
		Slug:            "suedpark-spielplatz-parcours",
		Title:           "Spielplatz-Parcours im Südpark",
		Area:            "Südpark",
		Short:           "Rutsche, Schaukel und Wippe als Stationen eines Bewegungsparcours.",
		DurationMinutes: 50,
		DistanceKm:      0.7,
		BestTime:        "nachmittags",
		StrollerOK:      true,
		StartPoint:      "Großer Spielplatz am Deckerner Weg",
		RouteSteps: []string{
			"Gemeinsam eine Stationsreihenfolge festlegen.",
			"Jede Station zweimal machen, erst langsam, dann schneller.",
			"Zwischen den Stationen hüpfen statt gehen.",
			"Zum Abschluss die Lieblingsstation küren.",
		},
		Preparation:     []string{"Matschhose bei feuchtem Sand"},
		PackingList:     []string{"Wasserflasche", "Snack"},
		ExecutionTips:   []string{"Stoßzeiten meiden, dann sind alle Stationen frei"},
		Variations:      []string{"Den Parcours rückwärts ablaufen."},
		ToddlerBenefits: []string{"Grobmotorik", "Kognitiv", "Sozial-emotional"},
		ParentTip:       "Das Kind die Reihenfolge bestimmen lassen und die Plan-Wörter wiederholen.",
		Risks:           []string{"Zusammenstöße mit anderen Kindern"},
		Mitigations:     []string{"An vollen Tagen Abstand halten und Stationen flexibel tauschen."},
		Tags:            []string{"Spielplatz", "Bewegung", "Parcours"},
		Accessibility:   []string{"Kinderwagentauglich"},
		SeasonTags:      []string{models.SeasonSpring, models.SeasonSummer, models.SeasonAutumn},
		WeatherTags:     []string{models.WeatherTagSun, models.WeatherTagCloudy},
		EnergyLevel:     models.EnergyHigh,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          1.5,
		AgeMax:          6.0,
		MoodTags:        []string{"wild", "fröhlich"},
		SafetyLevel:     models.SafetyMedium,
	},
	{
		Slug:            "zuhause-papierboote",
		Title:           "Papierschiffe für die Badewanne falten",
		Area:            "Zuhause",
		Short:           "Einfache Schiffe aus Papier falten und im Waschbecken segeln lassen.",
		DurationMinutes: 35,
		DistanceKm:      0.0,
		BestTime:        "ganztägig",
		StrollerOK:      true,
		StartPoint:      "Küchentisch",
		RouteSteps: []string{
			"Ein Blatt Papier gemeinsam zu einem Schiff falten, das Kind drückt die Kniffe nach.",
			"Das Schiff mit Stiften bemalen und benennen.",
			"Das Waschbecken mit wenig Wasser füllen und das Schiff einsetzen.",
			"Durch Pusten einen Sturm machen und das Schiff über das Wasser treiben.",
		},
		Preparation:     []string{"Papier und Stifte bereitlegen", "Handtuch neben das Becken legen"},
		PackingList:     []string{"Papier", "Stifte", "Handtuch"},
		ExecutionTips:   []string{"Dickeres Papier hält länger dicht"},
		Variations:      []string{"Einen kleinen Hafen aus Bechern am Beckenrand bauen."},
		ToddlerBenefits: []string{"Feinmotorik", "Sprache", "Kreativität"},
		ParentTip:       "Jeden Faltschritt ankündigen, das Kind spricht die Schritte mit.",
		Risks:           []string{"Wasser auf dem Boden"},
		Mitigations:     []string{"Wenig Wasser einfüllen und ein Handtuch bereithalten."},
		Tags:            []string{"Drinnen", "Basteln", "Wasser", "Falten"},
		SeasonTags:      []string{models.SeasonWinter, models.SeasonAutumn, models.SeasonSpring, models.SeasonSummer},
		WeatherTags:     []string{models.WeatherTagRain, models.WeatherTagCold},
		EnergyLevel:     models.EnergyLow,
		Difficulty:      models.DifficultyMedium,
		AgeMin:          2.5,
		AgeMax:          6.0,
		MoodTags:        []string{"ruhig", "konzentriert"},
		SafetyLevel:     models.SafetyLow,
	},
}
