package analyzer

// Fixed word sets used for mood scoring and signal detection. The lists are
// deliberately small and include the Indonesian terms the app's users write.
var positiveWords = map[string]struct{}{
	"calm": {}, "peace": {}, "relief": {}, "grateful": {}, "gratitude": {},
	"hope": {}, "okay": {}, "better": {}, "progress": {}, "rest": {},
	"proud": {}, "joy": {}, "happy": {}, "content": {}, "support": {},
	"breathe": {}, "breathing": {},
}

var negativeWords = map[string]struct{}{
	"sad": {}, "down": {}, "tired": {}, "exhausted": {}, "anxious": {},
	"anxiety": {}, "panic": {}, "angry": {}, "mad": {}, "lonely": {},
	"burnout": {}, "burned": {}, "stress": {}, "stressed": {}, "worry": {},
	"worried": {}, "overwhelmed": {}, "depressed": {}, "cry": {},
	"crying": {}, "fear": {}, "scared": {}, "hopeless": {}, "worthless": {},
}

var stressWords = map[string]struct{}{
	"stress": {}, "stressed": {}, "overwhelm": {}, "overwhelmed": {},
	"deadline": {}, "burnout": {}, "exhausted": {},
}

var sadnessWords = map[string]struct{}{
	"sad": {}, "down": {}, "blue": {}, "cry": {}, "crying": {}, "empty": {},
	"hopeless": {}, "worthless": {}, "depressed": {},
}

var angerWords = map[string]struct{}{
	"angry": {}, "mad": {}, "furious": {}, "irritated": {}, "annoyed": {},
}

var lonelyWords = map[string]struct{}{
	"lonely": {}, "alone": {}, "isolated": {}, "left out": {},
}

var anxietyWords = map[string]struct{}{
	"anxious": {}, "anxiety": {}, "panic": {}, "scared": {}, "fear": {},
	"khawatir": {}, "cemas": {},
}

// Crisis phrases are matched as substrings of the space-joined token
// sequence, so multi-word phrases match across token boundaries.
var crisisPhrases = []string{
	"hopeless", "no way out", "end it", "suicide", "kill myself",
	"want to die", "self harm", "hurt myself",
	"bunuh diri", "menyakiti diri", "putus asa", "tidak ada harapan",
}
