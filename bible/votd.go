package bible

// randomVerses feeds RandomVerse. Picked for broad encouragement rather than
// obscurity.
var randomVerses = []string{
	"John 3:16", "Romans 8:28", "Jeremiah 29:11", "Philippians 4:13",
	"Isaiah 41:10", "Psalm 23:4", "Romans 8:38-39", "2 Corinthians 5:17",
	"Ephesians 2:8-9", "Psalm 46:1", "Proverbs 3:5-6", "Matthew 11:28-30",
	"Romans 12:2", "Galatians 2:20", "Joshua 1:9", "Psalm 34:18",
	"Isaiah 40:31", "Psalm 147:3", "Romans 5:8", "1 Peter 5:7",
	"Lamentations 3:22-23", "John 16:33", "Galatians 5:1", "Psalm 139:14",
	"Hebrews 12:1-2", "James 1:2-4", "2 Timothy 1:7", "Philippians 4:6-7",
	"Psalm 91:1-2", "Isaiah 43:2", "Romans 15:13", "Colossians 3:23-24",
	"Micah 6:8", "Psalm 119:105", "1 John 4:19", "Matthew 5:14-16",
	"Deuteronomy 31:6", "Psalm 27:1", "John 14:27", "Romans 6:23",
	"Ephesians 6:10-11", "1 Corinthians 10:13", "Psalm 37:4",
	"Isaiah 54:17", "John 10:10", "Psalm 18:2", "Matthew 6:33",
	"2 Corinthians 12:9", "Hebrews 4:16", "Revelation 21:4",
}

// dailyVerses is the verse-of-the-day rotation, indexed by day of year.
// Grouped in two-week themes.
var dailyVerses = []string{
	// Week 1-2: New beginnings / Identity in Christ
	"2 Corinthians 5:17", "Ephesians 2:10", "Galatians 2:20", "Colossians 3:3",
	"1 Peter 2:9", "Romans 8:1", "John 1:12", "Ephesians 1:4-5",
	"Romans 8:17", "Psalm 139:14", "2 Corinthians 3:18", "Jeremiah 1:5",
	"Isaiah 43:1", "Galatians 3:26",
	// Week 3-4: Grace and Salvation
	"Ephesians 2:8-9", "Romans 5:8", "John 3:16", "Titus 3:5",
	"Romans 6:23", "Romans 3:23-24", "1 John 1:9", "Romans 10:9",
	"Acts 16:31", "John 14:6", "John 10:28", "Romans 8:38-39",
	"Hebrews 7:25", "Ephesians 1:7",
	// Week 5-6: Strength and Courage
	"Joshua 1:9", "Isaiah 41:10", "Philippians 4:13", "2 Timothy 1:7",
	"Deuteronomy 31:6", "Psalm 27:1", "Psalm 18:2", "Isaiah 40:31",
	"Psalm 46:1", "Nehemiah 8:10", "Psalm 28:7", "Ephesians 6:10",
	"Psalm 118:6", "2 Corinthians 12:9",
	// Week 7-8: Hope and Future
	"Jeremiah 29:11", "Romans 15:13", "Romans 8:28", "Proverbs 3:5-6",
	"Psalm 37:4", "Isaiah 43:18-19", "Lamentations 3:22-23", "Psalm 30:5",
	"Hebrews 11:1", "Romans 5:3-5", "Psalm 42:11", "Habakkuk 3:17-18",
	"Psalm 62:5-6", "Philippians 1:6",
	// Week 9-10: Peace and Comfort
	"John 14:27", "Philippians 4:6-7", "Matthew 11:28-30", "Psalm 23:1-3",
	"Isaiah 26:3", "Psalm 34:18", "2 Corinthians 1:3-4", "Romans 8:26",
	"1 Peter 5:7", "Psalm 55:22", "Psalm 147:3", "Isaiah 43:2",
	"John 16:33", "Psalm 91:1-2",
}
