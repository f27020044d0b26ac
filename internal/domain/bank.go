package domain

import "strconv"

// TotalQuestions is the fixed length every submission must match.
const TotalQuestions = 10

// MaxOptionIndex is the highest valid answer index (options 0..3).
const MaxOptionIndex = 3

// Questions is the ordered question bank. The server resolves submitted
// answer indices against this copy, never against client-supplied text.
var Questions = []Question{
	{
		Text:         "It's the first day of the semester and your 8 AM lecture room was moved across campus without notice.",
		Prompt:       "You would...",
		Options:      []string{"March to the registrar and complain", "Shrug and enjoy the walk", "Ask why rooms keep changing every term", "No problem, I scouted the backup room yesterday"},
		OptionEmojis: []string{"😤", "😌", "🤔", "😎"},
		Rewards: []Reward{
			{Name: "Megaphone of Justice", Desc: "For when the front desk pretends not to hear you.", Image: "📢"},
			{Name: "Comfy Sneakers", Desc: "Every detour is a morning stroll now.", Image: "👟"},
			{Name: "Detective Notebook", Desc: "Somebody has to document the room-shuffling conspiracy.", Image: "🕵️"},
			{Name: "Laminated Campus Map", Desc: "Annotated. Color-coded. Waterproof.", Image: "🗺️"},
		},
		Traits: []Trait{TraitChallenger, TraitFreeSpirit, TraitChallenger, TraitPlanner},
	},
	{
		Text:         "A campus cat has claimed your favorite library seat.",
		Prompt:       "You would...",
		Options:      []string{"Negotiate for shared custody of the seat", "Sit on the floor, obviously", "Wonder who feeds all these cats", "Come back at the exact hour the cat naps elsewhere"},
		OptionEmojis: []string{"🐱", "🧘", "🤔", "⏰"},
		Rewards: []Reward{
			{Name: "Bag of Cat Treats", Desc: "Diplomacy has a currency.", Image: "🐟"},
			{Name: "Foldable Cushion", Desc: "The floor is a seat if you believe.", Image: "🪑"},
			{Name: "Cat Census Clipboard", Desc: "Seventeen cats and counting.", Image: "📋"},
			{Name: "Pocket Timetable", Desc: "Even the cats run on your schedule now.", Image: "📅", Bonus: "The cat respects punctuality."},
		},
		Traits: []Trait{TraitLoyalist, TraitFreeSpirit, TraitChallenger, TraitPlanner},
	},
	{
		Text:         "The cafeteria introduces a mystery menu item nobody can identify.",
		Prompt:       "Who do you face it with?",
		Options:      []string{"Your lab partner", "Your club seniors", "The stranger in the queue", "Nobody, you go alone"},
		OptionEmojis: []string{"🥼", "🎓", "👋", "🚶"},
		Rewards: []Reward{
			{Name: "Shared Spoon", Desc: "Mystery food is a team sport.", Image: "🥄"},
			{Name: "Seniors' Blessing", Desc: "They survived it in their year too.", Image: "🙏"},
			{Name: "Instant Friendship", Desc: "Forged in culinary uncertainty.", Image: "🤝"},
			{Name: "Iron Stomach Badge", Desc: "Solo runs build character.", Image: "🎖️"},
		},
		Shared: &SubQuestion{
			Prompt:       "The first bite is... not what anyone expected.\nWhat's your move?",
			Options:      []string{"Demand the recipe from the kitchen", "Finish it out of respect", "Rate it in the group chat", "Order a second plate to confirm"},
			OptionEmojis: []string{"🍳", "🫡", "📱", "🍽️"},
			Images:       []string{"🥼", "🎓", "👋", "🚶"},
			Rewards: []Reward{
				{Name: "Kitchen Access Pass", Desc: "You will get to the bottom of this stew.", Image: "🔑"},
				{Name: "Clean Plate Award", Desc: "Loyalty to the cafeteria knows no flavor.", Image: "🏆"},
				{Name: "Food Critic Badge", Desc: "Three stars. Would be confused again.", Image: "⭐"},
				{Name: "Second Helping", Desc: "Reproducibility matters.", Image: "🍛"},
			},
			Traits: []Trait{TraitChallenger, TraitLoyalist, TraitFreeSpirit, TraitPlanner},
		},
	},
	{
		Text:         "Campus wifi dies five minutes before your assignment deadline.",
		Prompt:       "You would...",
		Options:      []string{"Hotspot. Problem solved", "Toggle the router 22 times", "Ask why it always dies at deadlines", "Accept fate and email the professor"},
		OptionEmojis: []string{"📶", "🔄", "🤔", "📧"},
		Rewards: []Reward{
			{Name: "Unlimited Data Plan", Desc: "The university cannot stop you.", Image: "📡"},
			{Name: "Router Whisperer Title", Desc: "The 23rd toggle would have worked.", Image: "🧙"},
			{Name: "Infrastructure Memo", Desc: "CC: everyone responsible.", Image: "📝"},
			{Name: "Extension Request Template", Desc: "Politely desperate, professionally formatted.", Image: "🙇"},
		},
		Traits: []Trait{TraitPlanner, TraitFreeSpirit, TraitChallenger, TraitLoyalist},
	},
	{
		Text:         "The semester's group project team is assembling, and you must pick your role.",
		Prompt:       "You claim...",
		Options:      []string{"The leader seat", "The design work", "The research pile", "The presentation slot"},
		OptionEmojis: []string{"👑", "🎨", "📚", "🎤"},
		Rewards: []Reward{
			{Name: "Gavel of Order", Desc: "Meetings start on time or else.", Image: "🔨"},
			{Name: "Infinite Canvas", Desc: "The slides will be beautiful.", Image: "🖌️"},
			{Name: "Citation Machine", Desc: "Forty sources, all formatted.", Image: "🔖"},
			{Name: "Golden Clicker", Desc: "Next slide, please.", Image: "🖱️"},
		},
		PerOption: []SubQuestion{
			{
				Text:         "Two teammates vanish a week before the deadline.",
				Prompt:       "As leader, you...",
				Options:      []string{"Track them down in person", "Redistribute the work calmly", "Report it to the professor", "Carry the whole thing yourself"},
				OptionEmojis: []string{"🔦", "📊", "🏫", "💪"},
				Rewards: []Reward{
					{Name: "Search Party Flashlight", Desc: "No teammate left behind, willingly or not.", Image: "🔦"},
					{Name: "Gantt Chart", Desc: "Replanned by midnight.", Image: "📊"},
					{Name: "Formal Complaint Form", Desc: "Filed in triplicate.", Image: "🗂️"},
					{Name: "Atlas Shoulders", Desc: "It was always going to end this way.", Image: "🏋️"},
				},
				Traits: []Trait{TraitLoyalist, TraitPlanner, TraitChallenger, TraitFreeSpirit},
			},
			{
				Text:         "The team rejects your color palette.",
				Prompt:       "As designer, you...",
				Options:      []string{"Defend every hex code", "Make both versions overnight", "Ask what they actually want", "Let the vote decide"},
				OptionEmojis: []string{"🎨", "🌙", "❓", "🗳️"},
				Rewards: []Reward{
					{Name: "Color Theory Textbook", Desc: "You will be heard.", Image: "📕"},
					{Name: "Night Owl Mug", Desc: "Two masterpieces by sunrise.", Image: "☕"},
					{Name: "Requirements Doc", Desc: "Revolutionary concept: asking first.", Image: "📄"},
					{Name: "Ballot Box", Desc: "Democracy, but for gradients.", Image: "🗳️"},
				},
				Traits: []Trait{TraitChallenger, TraitFreeSpirit, TraitPlanner, TraitLoyalist},
			},
			{
				Text:         "Your research uncovers that the whole topic premise is shaky.",
				Prompt:       "As researcher, you...",
				Options:      []string{"Tell the team to pivot now", "Quietly patch the argument", "Dig until 3 AM for counter-evidence", "Flag it and let the leader decide"},
				OptionEmojis: []string{"🔄", "🩹", "⛏️", "🚩"},
				Rewards: []Reward{
					{Name: "Pivot Compass", Desc: "New direction, same deadline.", Image: "🧭"},
					{Name: "Academic Duct Tape", Desc: "The abstract holds. Probably.", Image: "🩹"},
					{Name: "Midnight Oil", Desc: "The truth is down there somewhere.", Image: "🕯️"},
					{Name: "Red Flag Collection", Desc: "Escalation is a skill.", Image: "🚩"},
				},
				Traits: []Trait{TraitChallenger, TraitFreeSpirit, TraitPlanner, TraitLoyalist},
			},
			{
				Text:         "The projector fails thirty seconds into your presentation.",
				Prompt:       "As presenter, you...",
				Options:      []string{"Keep going from memory", "Turn it into a talk-show bit", "Demand the backup room", "Pull out printed handouts"},
				OptionEmojis: []string{"🧠", "🎙️", "🚪", "📄"},
				Rewards: []Reward{
					{Name: "Memory Palace Key", Desc: "Slide 14 lives in your head rent-free.", Image: "🗝️"},
					{Name: "Improv Mic", Desc: "The audience forgot there were slides.", Image: "🎙️"},
					{Name: "Backup Room Keycard", Desc: "You knew this would happen.", Image: "💳"},
					{Name: "Handout Stack", Desc: "Paper never crashes.", Image: "📑"},
				},
				Traits: []Trait{TraitFreeSpirit, TraitFreeSpirit, TraitChallenger, TraitPlanner},
			},
		},
	},
	{
		Text:         "The air conditioning in the study hall is set to arctic.",
		Prompt:       "You would...",
		Options:      []string{"Battle the cold with sheer will", "Relocate to a warmer floor", "Question who controls the thermostat", "Sit still until you adapt"},
		OptionEmojis: []string{"🥶", "🏃", "🤔", "🧊"},
		Rewards: []Reward{
			{Name: "Emergency Blanket", Desc: "Standard issue for study hall veterans.", Image: "🧣"},
			{Name: "Warm Corner Map", Desc: "Three floors surveyed, one sunbeam found.", Image: "☀️"},
			{Name: "Thermostat Petition", Desc: "Signatures: 47 and climbing.", Image: "✍️"},
			{Name: "Polar Bear Spirit", Desc: "The cold never bothered you anyway.", Image: "🐻‍❄️"},
		},
		Traits: []Trait{TraitLoyalist, TraitPlanner, TraitChallenger, TraitFreeSpirit},
	},
	{
		Text:         "A dog appears at your faculty building and everyone is in love.",
		Prompt:       "You would...",
		Options:      []string{"Gentle head pats, maybe a belly rub", "Sprint over immediately", "Greet it with your best dog voice", "Start a welcome dance"},
		OptionEmojis: []string{"🫳", "🏃", "🗣️", "💃"},
		Rewards: []Reward{
			{Name: "Certified Dog Greeter", Desc: "The dog has approved your technique.", Image: "🐕"},
			{Name: "Track Team Invitation", Desc: "Your 50-meter dash impressed the coach.", Image: "🎽"},
			{Name: "Interspecies Diplomat", Desc: "Fluent in woof.", Image: "🗨️"},
			{Name: "Dance Circle Crown", Desc: "The dog joined in. Legendary.", Image: "👑"},
		},
	},
	{
		Text:         "The only elevator in your building fits four people and the queue is twenty deep.",
		Prompt:       "You would...",
		Options:      []string{"Take the stairs, all nine floors", "Complain loudly enough for the dean to hear", "Wait with stubborn, baseless hope", "Get in, then realize you forgot how to get down"},
		OptionEmojis: []string{"🪜", "📣", "🙏", "😵"},
		Rewards: []Reward{
			{Name: "Calves of Steel", Desc: "Floor nine fears you now.", Image: "🦵"},
			{Name: "Dean's Attention", Desc: "A second elevator is 'under consideration.'", Image: "🏛️"},
			{Name: "Eternal Optimism", Desc: "It has to come back eventually.", Image: "🌈"},
			{Name: "Elevator Residency", Desc: "You live here now.", Image: "🛗"},
		},
		Traits: []Trait{TraitFreeSpirit, TraitChallenger, TraitLoyalist, TraitNone},
	},
	{
		Text:         "Finals week. The library is full, your room is loud, and the coffee shop has a one-hour seat limit.",
		Prompt:       "You would...",
		Options:      []string{"Claim a stairwell and defend it", "Build a master schedule of quiet spots", "Study anywhere, chaos is fuel", "Team up with friends to rotate seats"},
		OptionEmojis: []string{"🏰", "🗓️", "🌪️", "👥"},
		Rewards: []Reward{
			{Name: "Stairwell Throne", Desc: "Territory acquired. Trespassers glared at.", Image: "🪑"},
			{Name: "Quiet Spot Almanac", Desc: "Hour-by-hour noise forecasts.", Image: "📔"},
			{Name: "Chaos Goggles", Desc: "Focus is a state of mind.", Image: "🥽"},
			{Name: "Seat Rotation Pact", Desc: "Signed in highlighter.", Image: "🤝"},
		},
		Traits: []Trait{TraitChallenger, TraitPlanner, TraitFreeSpirit, TraitLoyalist},
	},
	{
		Text:         "The campus festival is tomorrow and you can only commit to one thing.",
		Prompt:       "You pick...",
		Options:      []string{"The headline band", "The photo-perfect art exhibition", "The games with friends", "The legendary food stalls"},
		OptionEmojis: []string{"🎸", "🖼️", "🎯", "🍢"},
		Rewards: []Reward{
			{Name: "Front Row Wristband", Desc: "Ears ringing, heart full.", Image: "🎫"},
			{Name: "Golden Hour Photos", Desc: "Your feed will never recover.", Image: "📸"},
			{Name: "Ring Toss Champion", Desc: "Three plushies and counting.", Image: "🧸"},
			{Name: "Skewer Connoisseur", Desc: "You tried all fourteen stalls.", Image: "🍡"},
		},
		Traits: []Trait{TraitFreeSpirit, TraitPlanner, TraitLoyalist, TraitChallenger},
	},
}

// Results maps each trait to its themed personality outcome.
var Results = map[Trait]PersonalityResult{
	TraitChallenger: {
		Title:     "The Challenger",
		Desc:      "You question the system, the schedule, and occasionally the cafeteria. Campus runs better because you refuse to let it run badly.",
		Emoji:     "🔥",
		ItemLabel: "The item you should carry is...",
		ItemName:  "Pocket Megaphone",
		ItemDesc:  "For opinions that deserve an audience.",
		ItemEmoji: "📢",
	},
	TraitPlanner: {
		Title:     "The Planner",
		Desc:      "Backup rooms, backup routes, backup plans for the backup plans. Chaos looks at your color-coded life and walks away.",
		Emoji:     "🗂️",
		ItemLabel: "The item you should carry is...",
		ItemName:  "Indestructible Planner",
		ItemDesc:  "Every contingency has a page.",
		ItemEmoji: "📘",
	},
	TraitFreeSpirit: {
		Title:     "The Free Spirit",
		Desc:      "Detours are the destination. You'll graduate with average attendance and outstanding stories.",
		Emoji:     "🎈",
		ItemLabel: "The item you should carry is...",
		ItemName:  "One-Way Wind Chime",
		ItemDesc:  "Goes wherever the breeze suggests.",
		ItemEmoji: "🎐",
	},
	TraitLoyalist: {
		Title:     "The Loyalist",
		Desc:      "Same seat, same friends, same order at the coffee shop. You are the fixed point an entire friend group navigates by.",
		Emoji:     "🛡️",
		ItemLabel: "The item you should carry is...",
		ItemName:  "Friendship Thermos",
		ItemDesc:  "Always enough for two.",
		ItemEmoji: "🫖",
	},
}

// OptionText resolves a validated answer index to its human-readable
// option text. Out-of-bank coordinates map to a placeholder rather than
// panicking.
func OptionText(question, option int) string {
	if question >= 0 && question < len(Questions) {
		opts := Questions[question].Options
		if option >= 0 && option < len(opts) {
			return opts[option]
		}
	}
	return "Unknown (" + strconv.Itoa(option) + ")"
}
