package config

// Default returns the built-in rule set for party-card decks. Keywords
// match as whole words only; the exclusion patterns suppress categories
// in contexts that triggered false positives on real decks.
func Default() *Config {
	return &Config{
		ConfigVersion: 1,
		Categories: []Category{
			{
				Name: "SexuallyExplicit",
				Keywords: []string{
					"sex", "cum", "masturbate", "masturbation", "porn", "orgasm", "erection",
					"vagina", "penis", "handjob", "dildo", "vibrator", "horny", "naked", "nude",
					"dick", "cock", "pussy", "virginity", "virgin", "blowjob", "blow job",
					"sex position", "go down on", "anal sex", "oral sex",
					"ass", "butt",
				},
				Exclude: `chicken\s*breast|breast\s*stroke|oral\s*exam|oral\s*presentation|oral\s*history`,
			},
			{
				Name:     "Sexist",
				Keywords: []string{"bitch", "slut", "whore", "cunt"},
			},
			{
				Name: "Racist",
				Keywords: []string{
					"slavery", "white man", "black man", "black woman", "aboriginal",
					"tribe", "mexican", "racist", "racism",
				},
				Exclude: `primitive\s+version|indian\s+food|indian\s+cuisine|indian\s+summer|asian\s+cuisine|asian\s+food|tribe\s+called`,
			},
			{
				Name: "Profanity",
				Keywords: []string{
					"shit", "fuck", "fucking", "fucked", "damn", "hell", "ass", "bastard", "crap",
				},
			},
			{
				Name: "Violence",
				Keywords: []string{
					"kill", "killing", "murder", "murdered", "death", "blood", "bloody", "torture",
					"rape", "raped", "abuse", "abused", "violence", "weapon", "weapons", "gun", "guns",
					"knife", "bomb", "bombs", "stab", "stabbing", "shoot", "shooting",
				},
				Exclude: `dead\s+tired|dead\s+end|buzzkill|overkill|kill\s+two\s+birds|glue\s+gun|nail\s+gun|blood\s+orange|blood\s+type`,
			},
			{
				Name: "Drugs",
				Keywords: []string{
					"cocaine", "heroin", "meth", "marijuana", "lsd", "cigarette", "cigarettes",
					"alcohol", "drunk", "tripping on acid", "getting high", "getting drunk",
					"drugs", "overdose",
				},
				Exclude: `weed\s+killer|weeding|drug\s+store|pharmacy|vitamin\s+pills|sleeping\s+pills\b|pain\s+relief`,
			},
		},
		Levels: LevelsConfig{
			Severe: []string{"SexuallyExplicit", "Sexist", "Racist", "Violence"},
			Medium: []string{"Drugs"},
			Mild:   []string{"Profanity"},
		},
		Output: OutputConfig{TagColumns: DefaultTagColumns},
	}
}
