package tutor

// fallbackAnswers is the deterministic content bank used when the
// provider is unavailable or its output cannot be salvaged. Every entry
// satisfies the answer contract so the fallback path can never fail
// validation.
var fallbackAnswers = map[string]AnswerRecord{
	"Mathematics": {
		KeyPoints: []string{
			"Break every problem into smaller steps you can check one at a time",
			"Identify what the question gives you and what it asks for before computing",
			"Estimate the answer first so you can spot calculation slips",
		},
		StepByStep: "Start by writing down exactly what the problem gives you and what it asks for. " +
			"Choose the formula or method that links the two, then work one step at a time, " +
			"writing each line down. After you reach an answer, substitute it back into the " +
			"original problem to confirm it fits. For example, to solve 2x + 6 = 14, subtract 6 " +
			"from both sides to get 2x = 8, then divide both sides by 2 to get x = 4. Checking: " +
			"2(4) + 6 = 14, so the answer is correct.",
		RealWorldExample: "When you buy airtime, working out how many minutes a 100 shilling " +
			"voucher gives you at 2.50 per minute is the same equation solving: 2.5x = 100, so x = 40 minutes.",
		CommonMistakes: []string{
			"Doing an operation to one side of an equation but not the other",
			"Skipping steps mentally and losing track of signs",
			"Not checking the final answer against the original question",
		},
		AdditionalTips: []string{
			"Practice a few problems every day rather than many in one sitting",
			"Keep a list of formulas and read through it before starting homework",
		},
	},
	"Physics": {
		KeyPoints: []string{
			"Physics describes how and why things move and interact",
			"Every quantity has a unit; carrying units catches most errors",
			"Forces, energy, and motion are linked through a small set of laws",
		},
		StepByStep: "Begin by drawing the situation: mark the object, the forces on it, and the " +
			"direction of motion. List the known quantities with their units and the one you need " +
			"to find. Pick the law or formula that connects them, such as F = ma for force and " +
			"acceleration, substitute the values, and solve. Always state the unit in your answer. " +
			"If a 10 kg box is pushed with 20 N, its acceleration is a = F/m = 20/10 = 2 m/s squared.",
		RealWorldExample: "A matatu braking suddenly throws passengers forward because their " +
			"bodies keep moving at the old speed. That is inertia, Newton's first law, acting on you.",
		CommonMistakes: []string{
			"Mixing units, such as grams with kilograms, in the same formula",
			"Confusing mass with weight; weight is a force, mass is not",
		},
		AdditionalTips: []string{
			"Relate each new law to something you have seen happen in daily life",
			"Redraw the diagram yourself instead of only reading the textbook one",
		},
	},
	"Chemistry": {
		KeyPoints: []string{
			"Matter is made of atoms that combine in fixed ratios",
			"Chemical equations must balance; atoms are never created or destroyed",
			"Reactions involve energy changes you can often observe",
		},
		StepByStep: "Write the word equation for the reaction first, then replace each substance " +
			"with its chemical formula. Count the atoms of each element on both sides and add " +
			"coefficients until they match. For burning hydrogen: H2 + O2 gives H2O is unbalanced " +
			"because oxygen does not match, so write 2H2 + O2 gives 2H2O. Now there are 4 hydrogen " +
			"and 2 oxygen atoms on each side.",
		RealWorldExample: "Charcoal burning in a jiko is carbon reacting with oxygen to form " +
			"carbon dioxide and release heat, the same combustion reaction written as C + O2 gives CO2.",
		CommonMistakes: []string{
			"Changing subscripts in formulas instead of adding coefficients when balancing",
			"Forgetting that some elements exist as diatomic molecules like O2 and H2",
		},
		AdditionalTips: []string{
			"Learn the first twenty elements and their symbols by heart",
			"Balance equations element by element, leaving oxygen and hydrogen for last",
		},
	},
	"Biology": {
		KeyPoints: []string{
			"Living things are organized from cells up to whole organisms",
			"Structure and function go together; shape explains job",
			"Energy flows through living systems via respiration and photosynthesis",
		},
		StepByStep: "Start with the cell, the basic unit of life. Cells group into tissues, " +
			"tissues into organs, and organs into systems that keep the organism alive. When " +
			"studying any part, ask what its structure is and how that structure helps it do its " +
			"job. The leaf, for example, is thin and broad to catch sunlight, has stomata to let " +
			"gases in and out, and contains chloroplasts where photosynthesis turns carbon dioxide " +
			"and water into glucose and oxygen.",
		RealWorldExample: "Maize growing in a shamba is photosynthesis at work: sunlight, water " +
			"from the soil, and carbon dioxide from the air become the starch stored in the cobs you eat.",
		CommonMistakes: []string{
			"Saying plants do not respire; they respire day and night like animals",
			"Confusing diffusion with osmosis; osmosis is water across a membrane",
		},
		AdditionalTips: []string{
			"Draw and label diagrams from memory, then compare with the textbook",
			"Link each process to the organ where it happens",
		},
	},
	"History": {
		KeyPoints: []string{
			"Events have causes and consequences; look for both",
			"Sources must be weighed for who wrote them and why",
			"Chronology matters; place events on a timeline before analyzing them",
		},
		StepByStep: "For any historical event, first establish when and where it happened. Then " +
			"identify the causes, separating long-term conditions from immediate triggers. Describe " +
			"what happened, then trace the consequences for different groups of people. Finally ask " +
			"how we know: which sources report it, and what bias might each carry. This " +
			"cause-event-consequence structure works for exam essays as well.",
		RealWorldExample: "Understanding why your town has its name, its market day, or its " +
			"railway line usually leads back to colonial-era decisions whose effects you still see today.",
		CommonMistakes: []string{
			"Retelling a story without explaining causes or significance",
			"Treating one source as the full truth without questioning its origin",
		},
		AdditionalTips: []string{
			"Build timelines for each topic and revise from them",
			"Practice writing answers with point, evidence, and explanation",
		},
	},
	"Geography": {
		KeyPoints: []string{
			"Physical processes shape landscapes over long timescales",
			"Human activity and environment influence each other",
			"Maps and data are the geographer's main tools",
		},
		StepByStep: "Approach each topic by asking where, why there, and so what. Locate the " +
			"feature or activity on a map, explain the physical or human processes that put it " +
			"there, and assess its effects on people and the environment. For rivers, trace the " +
			"journey from source to mouth: erosion dominates in the upper course cutting V-shaped " +
			"valleys, transport in the middle course, and deposition in the lower course building " +
			"floodplains and deltas.",
		RealWorldExample: "The Great Rift Valley's lakes, escarpments, and volcanoes around you " +
			"were formed by tectonic plates pulling apart, a process still happening today.",
		CommonMistakes: []string{
			"Describing a feature without explaining the process that formed it",
			"Ignoring map scale when measuring distances",
		},
		AdditionalTips: []string{
			"Practice sketching maps and diagrams; marks often come from them",
			"Connect every topic to an example you can name and locate",
		},
	},
	"English": {
		KeyPoints: []string{
			"Good writing is clear first, impressive second",
			"Every paragraph should develop one idea with evidence",
			"Reading widely is the fastest way to improve vocabulary and grammar",
		},
		StepByStep: "Before writing, plan: note your main idea and the three or four points that " +
			"support it. Open with an introduction that states your position, give each point its " +
			"own paragraph starting with a topic sentence, support it with an example or quotation, " +
			"and close with a conclusion that answers the question asked. After drafting, read your " +
			"work aloud; your ear will catch errors your eye misses.",
		RealWorldExample: "A letter applying for a school bursary uses the same skills: a clear " +
			"opening stating what you want, paragraphs giving reasons with evidence, and a polite close.",
		CommonMistakes: []string{
			"Writing long sentences that lose the reader and the grammar",
			"Switching tenses mid-paragraph without reason",
		},
		AdditionalTips: []string{
			"Keep a notebook of new words with a sentence using each",
			"Read one article or story chapter every day",
		},
	},
	"General": {
		KeyPoints: []string{
			"Understanding beats memorizing; ask why until it makes sense",
			"Active practice, testing yourself, is stronger than rereading",
			"Spacing study over days fixes knowledge better than cramming",
		},
		StepByStep: "Take any topic and first read it once for the big picture without worrying " +
			"about details. Then go through it again slowly, turning headings into questions and " +
			"answering them as you read. Close the book and write down everything you remember, " +
			"then check what you missed. Finally, explain the topic out loud as if teaching a " +
			"friend; anywhere you stumble is where to study next.",
		RealWorldExample: "Footballers do not improve by watching matches alone; they drill the " +
			"moves. Studying works the same way: testing yourself is the drill.",
		CommonMistakes: []string{
			"Rereading notes and mistaking familiarity for understanding",
			"Studying one subject for hours instead of rotating subjects",
		},
		AdditionalTips: []string{
			"Study in short focused sessions with breaks between them",
			"Teach what you learn to someone else, even an imaginary student",
		},
	},
}

// FallbackAnswer returns the canned record for a subject, using the
// General entry for subjects without dedicated content. Always valid.
func FallbackAnswer(subject string) AnswerRecord {
	if rec, ok := fallbackAnswers[subject]; ok {
		return rec
	}
	return fallbackAnswers["General"]
}
