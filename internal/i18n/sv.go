package i18n

var sv = Text{
	Lang:  Swedish,
	Title: "Pontus Paulsson - Fullstackutvecklare",
	Nav: Nav{
		Home:     "Hem",
		About:    "Om Mig",
		Skills:   "Kunskaper",
		Projects: "Projekt",
		Contact:  "Kontakt",
	},
	Hero: Hero{
		TitleStart: "Skapar Digitala",
		Highlight:  "Upplevelser",
		TitleEnd:   "med Precision",
		Subtitle:   "Jag designar och utvecklar applikationer som gör skillnad. Med fokus på användarupplevelse och ren kod ger jag liv åt idéer genom teknologi.",
		ViewWork:   "Se Mina Projekt",
		ContactMe:  "Kontakta Mig",
		ScrollDown: "Scrolla Ner",
	},
	About: About{
		TitleStart:     "Förvandlar ",
		TitleHighlight: "idéer",
		TitleEnd:       " till verklighet",
		Content: "Jag är Pontus Paulsson, en Fullstack-utvecklare som älskar att lösa komplexa problem och skapa lösningar som både är smarta och lätta att använda. Jag jobbar främst med React, TypeScript, Node.js och .NET, men jag gillar att utforska nya teknologier och tech stacks för att hitta de bästa lösningarna för varje projekt.\n\n" +
			"Jag är också fascinerad av AI och ny teknologi, vilket ständigt pushar mig att tänka utanför boxen och experimentera med nya idéer. För mig handlar utveckling inte bara om kod, det handlar om att skapa något som människor kan använda och uppskatta varje dag.",
		BioTitle: "Lär känna mig",
		BioContent: "Jag är en stolt pappa till en energisk 1,5-åring som håller mig på tårna och fyller varje dag med skratt. Föräldraskapet är det vildaste och mest givande äventyret jag varit med om, och jag har turen att få dela det med min fantastiska partner.\n\n" +
			"När vi inte jagar vår lilla upptäckare älskar vi att resa som familj, upptäcka nya platser och uppleva olika kulturer. Jag älskar skidåkning, en passion som hängt med sedan barndomen, även om det tyvärr inte blir lika ofta i backarna nuförtiden som jag skulle önska.\n\n" +
			"Jag är också lite av en ölnörd och älskar att testa nya spännande brygder. Och efter en dag full av äventyr finns det inget bättre än att landa i soffan och njuta av lite kvalitets-Netflix.",
	},
	Skills: Skills{
		Title:       "Kunskaper & Teknologier",
		Description: "Teknologier och verktyg jag använder för att skapa produkter.",
		Categories: map[string]string{
			"frontend":    "Frontend-utveckling",
			"backend":     "Backend-utveckling",
			"devops":      "Utvecklingsverktyg",
			"specialized": "AI & Specialområden",
		},
	},
	Projects: Projects{
		Title:           "Projekt",
		Description:     "Kolla in några av mina senaste projekt. Varje projekt representerar min passion för att skapa vackra, funktionella applikationer.",
		AllTechnologies: "Alla Teknologier",
		NoProjects:      "Inga projekt matchar ditt nuvarande filter. Försök med att välja en annan teknologi.",
		SourceCode:      "Källkod",
		LiveProject:     "Live-projekt",
		MoreProjects:    "Fler projekt kommer snart...",
		Items: map[string]ProjectText{
			"filmFinder": {
				Title:       "Film Finder",
				Description: "En personlig följeslagare för att hitta och hålla koll på filmer med smart sökning, användarrecensioner, bevakningslistor och AI-drivna rekommendationer. Utforska filmer över olika genrer med ett elegant, modernt gränssnitt.",
			},
			"aiDetection": {
				Title:       "AI-Detektering i Realtid",
				Description: "En datorseendeapplikation som upptäcker ansikten och förutspår ålder, kön och känslor i realtid med hjälp av djupinlärningsmodeller med smidiga prediktioner och färgkodade displayer.",
			},
			"weatherDashboard": {
				Title:       "Väderinfopanel",
				Description: "En modern väderinfopanel med interaktiva kartor, realtidsvarningar och datavisualisering. Funktioner inkluderar aktuella förhållanden, prognoser, smarta klädförslag och anpassningsbara inställningar.",
			},
			"portfolio": {
				Title:       "Portfoliowebbplats",
				Description: "Modern utvecklarportfolio med interaktiva UI-element och dynamisk innehållsfiltrering. Funktioner inkluderar teknologiöversikt, dynamisk projektfiltrering, responsiv design och en animerad hero-bakgrund.",
			},
		},
	},
	Contact: Contact{
		Title:         "Kontakta mig",
		ReachMe:       "Jag är alltid intresserad av att höra om nya möjligheter och spännande projekt.",
		Availability:  "Tillgänglig för frilansuppdrag och heltidspositioner.",
		Description:   "Har du ett projekt i åtanke eller vill bara säga hej? Tveka inte att höra av dig. Jag är alltid öppen för att diskutera nya projekt och möjligheter.",
		Email:         "E-post",
		Phone:         "Telefon",
		Location:      "Plats",
		LocationValue: "Helsingborg, Sverige",
		Form: ContactForm{
			Name:                 "Namn",
			NamePlaceholder:      "Ditt namn",
			Email:                "E-post",
			EmailPlaceholder:     "din.epost@exempel.com",
			Subject:              "Ämne",
			SubjectPlaceholder:   "Projektförfrågan",
			Message:              "Meddelande",
			MessagePlaceholder:   "Ditt meddelande...",
			Send:                 "Skicka Meddelande",
			Sending:              "Skickar...",
			Success:              "Meddelandet har skickats! Jag återkommer så snart som möjligt.",
			Error:                "Något gick fel. Vänligen försök igen.",
			Invalid:              "Fyll i alla fält och ange en giltig e-postadress.",
			RateLimit:            "Gränsen nådd",
			RateLimitExplanation: "Du har nått maxgränsen för meddelanden idag. Vänligen försök igen imorgon.",
			Remaining:            "{count} meddelanden kvar idag",
		},
	},
	Footer: Footer{
		Rights:   "Alla rättigheter reserverade.",
		Designed: "Designad och byggd med passion och precision.",
	},
}
