package content

func strPtr(s string) *string { return &s }

// SeedStatistics is the bootstrap content for an empty statistics table.
var SeedStatistics = []Statistic{
	{Title: "Internet Users", Value: 820, Label: "Million Users", Category: "Access", Year: 2023, Source: strPtr("TRAI")},
	{Title: "Urban Users", Value: 490, Label: "Million Users", Category: "Demographics", Year: 2023, Source: strPtr("TRAI")},
	{Title: "Rural Users", Value: 330, Label: "Million Users", Category: "Demographics", Year: 2023, Source: strPtr("TRAI")},
	{Title: "Smartphone Users", Value: 650, Label: "Million Users", Category: "Devices", Year: 2023, Source: strPtr("Various")},
	{Title: "UPI Transactions", Value: 10000, Label: "Billion INR", Category: "Finance", Year: 2023, Source: strPtr("NPCI")},
}

// SeedGlossary is the bootstrap content for an empty glossary table.
var SeedGlossary = []GlossaryTerm{
	{Term: "Browser", Definition: "A software application used to access information on the World Wide Web (e.g., Chrome, Firefox).", Category: "Internet"},
	{Term: "URL", Definition: "Uniform Resource Locator; the address of a webpage.", Category: "Internet"},
	{Term: "Phishing", Definition: "A cybercrime where attackers trick you into revealing sensitive information like passwords.", Category: "Security"},
	{Term: "OTP", Definition: "One-Time Password; a code sent to your mobile to verify your identity.", Category: "Security"},
	{Term: "UPI", Definition: "Unified Payments Interface; a system that powers multiple bank accounts into a single mobile application.", Category: "Finance"},
	{Term: "Download", Definition: "Copying data from one computer system to another, typically over the internet.", Category: "Basics"},
	{Term: "Upload", Definition: "Transferring data from your computer to the internet.", Category: "Basics"},
	{Term: "WiFi", Definition: "A facility allowing computers, smartphones, or other devices to connect to the internet or communicate with one another wirelessly within a particular area.", Category: "Connectivity"},
}

// SeedQuiz is the bootstrap content for an empty quiz table.
var SeedQuiz = []QuizQuestion{
	{
		Question:      "What should you do if someone asks for your OTP over the phone?",
		Options:       []string{"Give it to them", "Hang up and do not share", "Ask them to repeat the request", "Send it via SMS"},
		CorrectAnswer: 1,
		Explanation:   strPtr("Never share your OTP with anyone. Banks or officials will never ask for it."),
	},
	{
		Question:      "Which of these is a strong password?",
		Options:       []string{"password123", "myname", "P@ssw0rd!23", "12345678"},
		CorrectAnswer: 2,
		Explanation:   strPtr("Strong passwords include a mix of uppercase, lowercase, numbers, and symbols."),
	},
	{
		Question:      "What is the full form of UPI?",
		Options:       []string{"United Payment Interface", "Unified Payments Interface", "Universal Payment ID", "Unique Payment Identity"},
		CorrectAnswer: 1,
		Explanation:   strPtr("UPI stands for Unified Payments Interface."),
	},
	{
		Question:      "Is it safe to click on links from unknown numbers on WhatsApp?",
		Options:       []string{"Yes, always", "Only if it looks interesting", "No, it might be a scam", "Yes, if my friend sent it"},
		CorrectAnswer: 2,
		Explanation:   strPtr("Links from unknown sources often lead to phishing sites or malware."),
	},
}
