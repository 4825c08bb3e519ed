package typing

// PracticeSentences is the built-in lesson list.
var PracticeSentences = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Digital literacy helps us connect with the world.",
	"Always keep your passwords strong and secret.",
	"The internet is a vast library of information.",
	"Practice makes perfect when learning to type.",
	"India is growing rapidly in the digital space.",
}

// Tips are shown alongside the exercise.
var Tips = []string{
	"Sit up straight and keep your feet flat on the floor.",
	`Place your fingers on the "Home Row" keys (ASDF and JKL;).`,
	"Focus on accuracy first. Speed will come naturally with practice.",
}
