package ref

// bookNames maps lowercase book names and common abbreviations to the
// canonical name of one of the 66 books.
var bookNames = map[string]string{
	// Old Testament
	"genesis": "Genesis", "gen": "Genesis", "ge": "Genesis",
	"exodus": "Exodus", "exod": "Exodus", "ex": "Exodus",
	"leviticus": "Leviticus", "lev": "Leviticus", "le": "Leviticus",
	"numbers": "Numbers", "num": "Numbers", "nu": "Numbers",
	"deuteronomy": "Deuteronomy", "deut": "Deuteronomy", "de": "Deuteronomy", "dt": "Deuteronomy",
	"joshua": "Joshua", "josh": "Joshua", "jos": "Joshua",
	"judges": "Judges", "judg": "Judges", "jdg": "Judges",
	"ruth": "Ruth", "ru": "Ruth",
	"1 samuel": "1 Samuel", "1samuel": "1 Samuel", "1 sam": "1 Samuel", "1sam": "1 Samuel",
	"2 samuel": "2 Samuel", "2samuel": "2 Samuel", "2 sam": "2 Samuel", "2sam": "2 Samuel",
	"1 kings": "1 Kings", "1kings": "1 Kings", "1 kgs": "1 Kings", "1kgs": "1 Kings",
	"2 kings": "2 Kings", "2kings": "2 Kings", "2 kgs": "2 Kings", "2kgs": "2 Kings",
	"1 chronicles": "1 Chronicles", "1chronicles": "1 Chronicles", "1 chr": "1 Chronicles", "1chr": "1 Chronicles", "1 chron": "1 Chronicles",
	"2 chronicles": "2 Chronicles", "2chronicles": "2 Chronicles", "2 chr": "2 Chronicles", "2chr": "2 Chronicles", "2 chron": "2 Chronicles",
	"ezra": "Ezra", "ezr": "Ezra",
	"nehemiah": "Nehemiah", "neh": "Nehemiah", "ne": "Nehemiah",
	"esther": "Esther", "est": "Esther", "esth": "Esther",
	"job": "Job", "jb": "Job",
	"psalms": "Psalms", "psalm": "Psalms", "ps": "Psalms", "psa": "Psalms",
	"proverbs": "Proverbs", "prov": "Proverbs", "pr": "Proverbs", "pro": "Proverbs",
	"ecclesiastes": "Ecclesiastes", "eccl": "Ecclesiastes", "ecc": "Ecclesiastes", "ec": "Ecclesiastes",
	"song of solomon": "Song of Solomon", "song": "Song of Solomon", "sos": "Song of Solomon", "ss": "Song of Solomon",
	"isaiah": "Isaiah", "isa": "Isaiah", "is": "Isaiah",
	"jeremiah": "Jeremiah", "jer": "Jeremiah", "je": "Jeremiah",
	"lamentations": "Lamentations", "lam": "Lamentations", "la": "Lamentations",
	"ezekiel": "Ezekiel", "ezek": "Ezekiel", "eze": "Ezekiel",
	"daniel": "Daniel", "dan": "Daniel", "da": "Daniel",
	"hosea": "Hosea", "hos": "Hosea", "ho": "Hosea",
	"joel": "Joel", "joe": "Joel",
	"amos": "Amos", "am": "Amos",
	"obadiah": "Obadiah", "obad": "Obadiah", "ob": "Obadiah",
	"jonah": "Jonah", "jon": "Jonah",
	"micah": "Micah", "mic": "Micah",
	"nahum": "Nahum", "nah": "Nahum", "na": "Nahum",
	"habakkuk": "Habakkuk", "hab": "Habakkuk",
	"zephaniah": "Zephaniah", "zeph": "Zephaniah", "zep": "Zephaniah",
	"haggai": "Haggai", "hag": "Haggai", "hg": "Haggai",
	"zechariah": "Zechariah", "zech": "Zechariah", "zec": "Zechariah",
	"malachi": "Malachi", "mal": "Malachi",
	// New Testament
	"matthew": "Matthew", "matt": "Matthew", "mat": "Matthew", "mt": "Matthew",
	"mark": "Mark", "mk": "Mark", "mr": "Mark",
	"luke": "Luke", "lk": "Luke", "lu": "Luke",
	"john": "John", "jn": "John", "joh": "John",
	"acts": "Acts", "act": "Acts", "ac": "Acts",
	"romans": "Romans", "rom": "Romans", "ro": "Romans",
	"1 corinthians": "1 Corinthians", "1corinthians": "1 Corinthians", "1 cor": "1 Corinthians", "1cor": "1 Corinthians",
	"2 corinthians": "2 Corinthians", "2corinthians": "2 Corinthians", "2 cor": "2 Corinthians", "2cor": "2 Corinthians",
	"galatians": "Galatians", "gal": "Galatians", "ga": "Galatians",
	"ephesians": "Ephesians", "eph": "Ephesians",
	"philippians": "Philippians", "phil": "Philippians", "php": "Philippians",
	"colossians": "Colossians", "col": "Colossians",
	"1 thessalonians": "1 Thessalonians", "1thessalonians": "1 Thessalonians", "1 thess": "1 Thessalonians", "1thess": "1 Thessalonians", "1 thes": "1 Thessalonians",
	"2 thessalonians": "2 Thessalonians", "2thessalonians": "2 Thessalonians", "2 thess": "2 Thessalonians", "2thess": "2 Thessalonians", "2 thes": "2 Thessalonians",
	"1 timothy": "1 Timothy", "1timothy": "1 Timothy", "1 tim": "1 Timothy", "1tim": "1 Timothy",
	"2 timothy": "2 Timothy", "2timothy": "2 Timothy", "2 tim": "2 Timothy", "2tim": "2 Timothy",
	"titus": "Titus", "tit": "Titus",
	"philemon": "Philemon", "phlm": "Philemon", "phm": "Philemon",
	"hebrews": "Hebrews", "heb": "Hebrews",
	"james": "James", "jas": "James", "jm": "James",
	"1 peter": "1 Peter", "1peter": "1 Peter", "1 pet": "1 Peter", "1pet": "1 Peter", "1 pe": "1 Peter",
	"2 peter": "2 Peter", "2peter": "2 Peter", "2 pet": "2 Peter", "2pet": "2 Peter", "2 pe": "2 Peter",
	"1 john": "1 John", "1john": "1 John", "1 jn": "1 John", "1jn": "1 John",
	"2 john": "2 John", "2john": "2 John", "2 jn": "2 John", "2jn": "2 John",
	"3 john": "3 John", "3john": "3 John", "3 jn": "3 John", "3jn": "3 John",
	"jude": "Jude", "jud": "Jude",
	"revelation": "Revelation", "rev": "Revelation", "re": "Revelation",
}

// Translations lists the translation codes the parser recognizes as a
// trailing word. Anything else after the numbers is ignored.
var Translations = []string{"esv", "kjv", "web", "nlt", "nasb", "nkjv", "niv", "asv", "amp", "csb", "msg"}

// IsTranslation reports whether code is a recognized translation.
func IsTranslation(code string) bool {
	for _, t := range Translations {
		if t == code {
			return true
		}
	}
	return false
}
