package generator

var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Avery", "Quinn",
	"Sam", "Jamie", "Drew", "Blake", "Cameron", "Dakota", "Emerson", "Finley",
	"Harper", "Hayden", "Jesse", "Kendall", "Logan", "Parker", "Peyton", "Reese",
	"Rowan", "Sage", "Skyler", "Spencer", "Sydney", "Tyler", "Adrian", "Angel",
	"Ashton", "Bailey", "Charlie", "Chris", "Devon", "Dylan", "Eden", "Ellis",
	"Frankie", "Gray", "Hunter", "Indigo", "Justice", "Kai", "Lane", "Lee",
	"London", "Marley", "Max", "Micah", "Noah", "Ocean", "Phoenix", "River",
	"Robin", "Rory", "Ryan", "Sawyer", "Shawn", "Sloan", "Storm", "Tatum",
	"Teagan", "Val", "Winter", "Zion", "Arden", "Aspen", "Aubrey", "August",
	"Bellamy", "Blair", "Briar", "Brooklyn", "Carson", "Carter", "Cedar", "Chandler",
	"Cody", "Corey", "Dallas", "Darcy", "Devin", "Elliot", "Emery", "Evan",
	"Ezra", "Fallon", "Flynn", "Gale", "Glenn", "Greer", "Harley", "Haven",
	"Holland", "Hollis", "Indiana", "Ivory", "Jaden", "Jules",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker",
	"Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales", "Murphy",
	"Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson", "Bailey",
	"Reed", "Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward", "Richardson",
	"Watson", "Brooks", "Chavez", "Wood", "James", "Bennett", "Gray", "Mendoza",
	"Ruiz", "Hughes", "Price", "Alvarez", "Castillo", "Sanders", "Patel", "Myers",
}

var projectTypes = []string{
	"Live Sports", "News Broadcast", "Entertainment Show", "Concert",
	"Award Ceremony", "Talk Show", "Game Show", "Reality Show",
	"Documentary", "Special Event", "Press Conference", "Panel Discussion",
	"Webinar", "Product Launch", "Corporate Event", "Festival Coverage",
}

var projectAdjectives = []string{
	"Premier", "Elite", "Grand", "Special", "Annual", "Weekly",
	"Daily", "Prime", "Exclusive", "Live", "Breaking", "Featured",
}
