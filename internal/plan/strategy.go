package plan

// strategy bundles everything goal-specific: the prompt guidance sent to the
// model and the default schedule, nutrition advice, and tips used when the
// model output is missing or unusable.
type strategy struct {
	promptGuidance  string
	schedules       map[Experience]map[string]DaySchedule
	nutritionAdvice string
	tips            []string
}

// strategyFor returns the catalog entry for a goal. The catalog covers every
// supported goal so the lookup cannot miss after ResolveGoal.
func strategyFor(goal Goal) strategy {
	if s, ok := catalog[goal]; ok {
		return s
	}
	return catalog[GoalGeneralHealth]
}

func cardio(activities []string, duration int, intensity Intensity, notes string) DaySchedule {
	return DaySchedule{Type: "cardio", Activities: activities, Duration: duration, Intensity: intensity, Notes: notes}
}

func strength(activities []string, duration int, intensity Intensity, notes string) DaySchedule {
	return DaySchedule{Type: "strength", Activities: activities, Duration: duration, Intensity: intensity, Notes: notes}
}

func mixed(activities []string, duration int, intensity Intensity, notes string) DaySchedule {
	return DaySchedule{Type: "mixed", Activities: activities, Duration: duration, Intensity: intensity, Notes: notes}
}

func mobility(activities []string, duration int, intensity Intensity, notes string) DaySchedule {
	return DaySchedule{Type: "flexibility", Activities: activities, Duration: duration, Intensity: intensity, Notes: notes}
}

func rest(notes string) DaySchedule {
	return DaySchedule{Type: "rest", Activities: []string{"Rest"}, Duration: 0, Intensity: IntensityLow, Notes: notes}
}

var catalog = map[Goal]strategy{
	GoalFatLoss: {
		promptGuidance: "Prioritize a sustainable calorie deficit. Combine steady-state and " +
			"interval cardio with two full-body strength sessions to preserve lean mass. " +
			"Keep rest days active with low-intensity movement.",
		schedules: map[Experience]map[string]DaySchedule{
			ExperienceBeginner: {
				"monday":    cardio([]string{"Brisk walking"}, 30, IntensityLow, "Keep a conversational pace"),
				"tuesday":   strength([]string{"Squats", "Push-ups", "Plank"}, 30, IntensityLow, "Bodyweight only, focus on form"),
				"wednesday": rest("Light stretching if you feel stiff"),
				"thursday":  cardio([]string{"Cycling"}, 30, IntensityMedium, "Flat terrain or low resistance"),
				"friday":    strength([]string{"Lunges", "Rows", "Crunches"}, 30, IntensityLow, "Two sets of each movement"),
				"saturday":  cardio([]string{"Swimming", "Brisk walking"}, 40, IntensityLow, "Pick whichever you enjoy"),
				"sunday":    rest("Full rest"),
			},
			ExperienceIntermediate: {
				"monday":    cardio([]string{"Running"}, 40, IntensityMedium, "Steady pace"),
				"tuesday":   strength([]string{"Squats", "Bench press", "Rows"}, 45, IntensityMedium, "Three sets, moderate load"),
				"wednesday": cardio([]string{"Jump rope", "Cycling"}, 30, IntensityHigh, "Intervals: 1 min hard, 2 min easy"),
				"thursday":  rest("Active recovery walk"),
				"friday":    strength([]string{"Deadlift", "Push-ups", "Plank"}, 45, IntensityMedium, "Keep rest under 90 seconds"),
				"saturday":  cardio([]string{"Running", "Rowing"}, 45, IntensityMedium, "Longer steady session"),
				"sunday":    rest("Full rest"),
			},
			ExperienceAdvanced: {
				"monday":    cardio([]string{"Running"}, 50, IntensityHigh, "Tempo run"),
				"tuesday":   strength([]string{"Squats", "Deadlift", "Pull-ups"}, 60, IntensityHigh, "Compound lifts first"),
				"wednesday": cardio([]string{"Jump rope", "Rowing"}, 40, IntensityHigh, "HIIT: 30s on, 60s off"),
				"thursday":  strength([]string{"Bench press", "Rows", "Plank"}, 50, IntensityMedium, "Supersets to keep heart rate up"),
				"friday":    cardio([]string{"Cycling"}, 45, IntensityMedium, "Zone 2 recovery ride"),
				"saturday":  mixed([]string{"Running", "Squats", "Push-ups"}, 60, IntensityHigh, "Circuit format"),
				"sunday":    rest("Full rest"),
			},
		},
		nutritionAdvice: "## Nutrition for fat loss\n\n" +
			"- Hold a moderate calorie deficit of roughly 300-500 kcal per day.\n" +
			"- Keep protein high, around 1.6-2.2 g per kg of body weight, to protect muscle.\n" +
			"- Fill half the plate with vegetables; they add volume with few calories.\n" +
			"- Prefer whole grains over refined carbohydrates and watch liquid calories.\n" +
			"- Eat slowly and stop at 80% fullness rather than counting every meal perfectly.",
		tips: []string{
			"Weigh yourself weekly under the same conditions, not daily.",
			"A deficit you can sustain beats an aggressive one you abandon.",
			"Strength training while cutting preserves the muscle that keeps metabolism up.",
			"Plan meals ahead so hunger never decides for you.",
			"Sleep 7-9 hours; short sleep measurably increases appetite.",
		},
	},
	GoalMuscleGain: {
		promptGuidance: "Prioritize progressive overload with compound lifts and a small calorie " +
			"surplus. Split pushing and pulling work across the week and keep cardio short so it " +
			"does not cut into recovery.",
		schedules: map[Experience]map[string]DaySchedule{
			ExperienceBeginner: {
				"monday":    strength([]string{"Squats", "Push-ups", "Rows"}, 40, IntensityMedium, "Full body, two sets each"),
				"tuesday":   rest("Muscles grow on rest days"),
				"wednesday": strength([]string{"Lunges", "Bench press", "Plank"}, 40, IntensityMedium, "Add weight only when form is solid"),
				"thursday":  rest("Gentle walk"),
				"friday":    strength([]string{"Deadlift", "Push-ups", "Crunches"}, 40, IntensityMedium, "Learn the hip hinge with light weight"),
				"saturday":  cardio([]string{"Brisk walking"}, 20, IntensityLow, "Short, keeps appetite and heart healthy"),
				"sunday":    rest("Full rest"),
			},
			ExperienceIntermediate: {
				"monday":    strength([]string{"Bench press", "Push-ups", "Plank"}, 50, IntensityMedium, "Push day, three working sets"),
				"tuesday":   strength([]string{"Squats", "Lunges"}, 50, IntensityMedium, "Leg day"),
				"wednesday": rest("Active recovery"),
				"thursday":  strength([]string{"Pull-ups", "Rows", "Crunches"}, 50, IntensityMedium, "Pull day"),
				"friday":    strength([]string{"Deadlift", "Squats"}, 50, IntensityHigh, "Heavy lower body"),
				"saturday":  cardio([]string{"Cycling"}, 25, IntensityLow, "Easy spin"),
				"sunday":    rest("Full rest"),
			},
			ExperienceAdvanced: {
				"monday":    strength([]string{"Bench press", "Push-ups"}, 60, IntensityHigh, "Push: top set then back-off volume"),
				"tuesday":   strength([]string{"Squats", "Lunges"}, 60, IntensityHigh, "Squat focus"),
				"wednesday": strength([]string{"Pull-ups", "Rows"}, 60, IntensityHigh, "Pull focus"),
				"thursday":  rest("Mobility work and light walking"),
				"friday":    strength([]string{"Deadlift", "Squats", "Plank"}, 60, IntensityHigh, "Heavy hinge day"),
				"saturday":  mixed([]string{"Push-ups", "Pull-ups", "Crunches"}, 45, IntensityMedium, "Weak-point accessory work"),
				"sunday":    rest("Full rest"),
			},
		},
		nutritionAdvice: "## Nutrition for muscle gain\n\n" +
			"- Eat a small surplus of roughly 200-300 kcal above maintenance.\n" +
			"- Target 1.6-2.2 g of protein per kg of body weight, spread over 3-5 meals.\n" +
			"- Carbohydrates around training fuel performance; do not fear them in a bulk.\n" +
			"- A protein-rich meal within a couple of hours after lifting supports recovery.\n" +
			"- Expect to gain slowly; more than ~0.5 kg a week is mostly not muscle.",
		tips: []string{
			"Progressive overload is the whole game: add a rep or a little weight each week.",
			"Log every working set so progress is measured, not felt.",
			"Prioritize compound lifts before isolation work.",
			"Muscle is built in the 48 hours after training, so guard your sleep.",
			"Deload every 6-8 weeks if progress stalls or joints complain.",
		},
	},
	GoalEndurance: {
		promptGuidance: "Build aerobic base with mostly easy continuous cardio, one interval " +
			"session per week, and one maintenance strength session. Increase weekly volume " +
			"gradually, never more than about ten percent per week.",
		schedules: map[Experience]map[string]DaySchedule{
			ExperienceBeginner: {
				"monday":    cardio([]string{"Brisk walking"}, 30, IntensityLow, "Comfortable pace throughout"),
				"tuesday":   rest("Stretch calves and hips"),
				"wednesday": cardio([]string{"Cycling"}, 30, IntensityLow, "Keep cadence easy"),
				"thursday":  strength([]string{"Squats", "Plank"}, 25, IntensityLow, "Light supporting strength"),
				"friday":    rest("Full rest"),
				"saturday":  cardio([]string{"Brisk walking", "Running"}, 35, IntensityMedium, "Alternate 3 min walk, 1 min jog"),
				"sunday":    rest("Full rest"),
			},
			ExperienceIntermediate: {
				"monday":    cardio([]string{"Running"}, 40, IntensityLow, "Easy conversational run"),
				"tuesday":   strength([]string{"Squats", "Lunges", "Plank"}, 35, IntensityMedium, "Runner strength work"),
				"wednesday": cardio([]string{"Running"}, 35, IntensityHigh, "Intervals: 4x3 min hard"),
				"thursday":  rest("Easy walk"),
				"friday":    cardio([]string{"Swimming", "Cycling"}, 40, IntensityLow, "Cross-training, low impact"),
				"saturday":  cardio([]string{"Running"}, 60, IntensityLow, "Long slow distance"),
				"sunday":    rest("Full rest"),
			},
			ExperienceAdvanced: {
				"monday":    cardio([]string{"Running"}, 50, IntensityLow, "Easy aerobic volume"),
				"tuesday":   cardio([]string{"Running"}, 45, IntensityHigh, "Track intervals: 6x800m"),
				"wednesday": strength([]string{"Squats", "Deadlift", "Plank"}, 40, IntensityMedium, "Heavy but low volume"),
				"thursday":  cardio([]string{"Cycling", "Swimming"}, 50, IntensityLow, "Cross-training"),
				"friday":    cardio([]string{"Running"}, 40, IntensityMedium, "Tempo at threshold"),
				"saturday":  cardio([]string{"Running"}, 90, IntensityLow, "Weekly long run"),
				"sunday":    rest("Full rest"),
			},
		},
		nutritionAdvice: "## Nutrition for endurance\n\n" +
			"- Carbohydrates are the primary fuel; eat more of them on hard and long days.\n" +
			"- Take a carb-rich snack within 30 minutes of finishing long sessions.\n" +
			"- Hydrate before, during, and after; add electrolytes for sessions over an hour.\n" +
			"- Protein still matters at about 1.2-1.6 g per kg for tissue repair.\n" +
			"- Practice race-day fueling during training, never on the day itself.",
		tips: []string{
			"Most of your weekly volume should feel genuinely easy.",
			"Raise weekly mileage by no more than about 10 percent.",
			"The long session is the cornerstone; schedule everything else around it.",
			"Rotate two pairs of shoes to spread impact stress.",
			"A rising resting heart rate in the morning is an early sign of overreaching.",
		},
	},
	GoalFlexibility: {
		promptGuidance: "Emphasize daily short mobility work over occasional long sessions. Mix " +
			"dynamic warm-ups, static holds of 30-60 seconds, and yoga flows. Pair stretching " +
			"with light strength work through full range of motion.",
		schedules: map[Experience]map[string]DaySchedule{
			ExperienceBeginner: {
				"monday":    mobility([]string{"Static stretching"}, 20, IntensityLow, "Hold each stretch 30 seconds, no bouncing"),
				"tuesday":   rest("Short walk"),
				"wednesday": mobility([]string{"Yoga"}, 25, IntensityLow, "Follow a beginner flow"),
				"thursday":  rest("Full rest"),
				"friday":    mobility([]string{"Static stretching", "Foam rolling"}, 20, IntensityLow, "Roll tight spots gently"),
				"saturday":  cardio([]string{"Brisk walking"}, 25, IntensityLow, "Movement keeps tissues supple"),
				"sunday":    rest("Full rest"),
			},
			ExperienceIntermediate: {
				"monday":    mobility([]string{"Yoga"}, 35, IntensityLow, "Full-body flow"),
				"tuesday":   strength([]string{"Squats", "Lunges"}, 30, IntensityLow, "Full range of motion, light load"),
				"wednesday": mobility([]string{"Static stretching"}, 25, IntensityLow, "Focus on hips and hamstrings"),
				"thursday":  rest("Easy walk"),
				"friday":    mobility([]string{"Yoga", "Foam rolling"}, 35, IntensityMedium, "Deeper holds, 45-60 seconds"),
				"saturday":  mixed([]string{"Brisk walking", "Static stretching"}, 40, IntensityLow, "Walk then stretch warm"),
				"sunday":    rest("Full rest"),
			},
			ExperienceAdvanced: {
				"monday":    mobility([]string{"Yoga"}, 45, IntensityMedium, "Advanced flow with balance poses"),
				"tuesday":   strength([]string{"Squats", "Deadlift"}, 35, IntensityMedium, "Loaded stretching at end range"),
				"wednesday": mobility([]string{"Static stretching"}, 30, IntensityLow, "Long holds, 60-90 seconds"),
				"thursday":  mobility([]string{"Yoga", "Foam rolling"}, 40, IntensityLow, "Recovery-focused session"),
				"friday":    strength([]string{"Lunges", "Pull-ups"}, 35, IntensityMedium, "Strength through full range"),
				"saturday":  mobility([]string{"Yoga"}, 50, IntensityMedium, "Peak session of the week"),
				"sunday":    rest("Full rest"),
			},
		},
		nutritionAdvice: "## Nutrition for flexibility and recovery\n\n" +
			"- Adequate protein supports the connective tissue you are remodeling.\n" +
			"- Collagen-rich foods or a collagen supplement with vitamin C may help tendons.\n" +
			"- Stay well hydrated; dehydrated tissue is stiffer tissue.\n" +
			"- Omega-3 rich fish a couple of times per week helps manage inflammation.\n" +
			"- Magnesium from leafy greens and nuts supports muscle relaxation.",
		tips: []string{
			"Stretch warm muscles; a few minutes of easy movement first makes a difference.",
			"Consistency beats intensity: ten minutes daily outperforms an hour weekly.",
			"Never stretch into sharp pain; mild tension is the working zone.",
			"Exhale slowly as you deepen a stretch.",
			"Photograph your deepest positions monthly; flexibility progress is hard to feel.",
		},
	},
	GoalGeneralHealth: {
		promptGuidance: "Balance the week across cardio, strength, and mobility so no quality is " +
			"neglected. Favor variety and enjoyment to build a durable habit over chasing any " +
			"single metric.",
		schedules: map[Experience]map[string]DaySchedule{
			ExperienceBeginner: {
				"monday":    cardio([]string{"Brisk walking"}, 30, IntensityLow, "Start the week gently"),
				"tuesday":   rest("Full rest"),
				"wednesday": strength([]string{"Squats", "Push-ups", "Plank"}, 25, IntensityLow, "Bodyweight basics"),
				"thursday":  rest("Short walk if you like"),
				"friday":    mobility([]string{"Static stretching"}, 20, IntensityLow, "Unwind the week"),
				"saturday":  cardio([]string{"Cycling", "Swimming"}, 30, IntensityLow, "Pick the one that sounds fun"),
				"sunday":    rest("Full rest"),
			},
			ExperienceIntermediate: {
				"monday":    cardio([]string{"Running"}, 35, IntensityMedium, "Steady run"),
				"tuesday":   strength([]string{"Squats", "Bench press", "Rows"}, 40, IntensityMedium, "Full-body strength"),
				"wednesday": rest("Active recovery"),
				"thursday":  cardio([]string{"Cycling", "Rowing"}, 35, IntensityMedium, "Alternate machines"),
				"friday":    strength([]string{"Deadlift", "Push-ups", "Plank"}, 40, IntensityMedium, "Second full-body session"),
				"saturday":  mobility([]string{"Yoga"}, 30, IntensityLow, "Mobility and breathing"),
				"sunday":    rest("Full rest"),
			},
			ExperienceAdvanced: {
				"monday":    cardio([]string{"Running"}, 45, IntensityMedium, "Aerobic base"),
				"tuesday":   strength([]string{"Squats", "Deadlift", "Pull-ups"}, 55, IntensityHigh, "Heavy compounds"),
				"wednesday": cardio([]string{"Jump rope", "Rowing"}, 30, IntensityHigh, "Short interval session"),
				"thursday":  mobility([]string{"Yoga", "Foam rolling"}, 35, IntensityLow, "Recovery work"),
				"friday":    strength([]string{"Bench press", "Rows", "Lunges"}, 50, IntensityMedium, "Volume day"),
				"saturday":  mixed([]string{"Swimming", "Static stretching"}, 50, IntensityMedium, "Swim then stretch"),
				"sunday":    rest("Full rest"),
			},
		},
		nutritionAdvice: "## Nutrition for general health\n\n" +
			"- Build meals around vegetables, whole grains, and a palm of protein.\n" +
			"- Aim for 25-30 g of fiber per day from plants rather than supplements.\n" +
			"- Keep ultra-processed food to a minority of your intake, not a forbidden one.\n" +
			"- Water as the default drink covers most hydration needs.\n" +
			"- The best diet is the nutritious one you can keep eating next year.",
		tips: []string{
			"Aim for at least 150 minutes of moderate activity per week.",
			"Pair every cardio habit with at least two strength sessions.",
			"Schedule workouts like appointments or they will not happen.",
			"Track how you feel, not only what you lift or run.",
			"Missing a day is noise; missing a month is a trend. React to trends.",
		},
	},
}
