package bible

// crossReferences is a hand-curated set of related passages for verses that
// come up constantly in chat. Keys are normalized (lowercase, single spaces).
var crossReferences = map[string][]string{
	"john 3:16":            {"Romans 5:8", "1 John 4:9-10", "Romans 8:32", "Ephesians 2:4-5", "John 3:36"},
	"romans 8:28":          {"Genesis 50:20", "Jeremiah 29:11", "Ephesians 1:11", "Romans 8:35-39", "Philippians 1:6"},
	"jeremiah 29:11":       {"Romans 8:28", "Proverbs 3:5-6", "Psalm 33:11", "Isaiah 55:8-9", "Psalm 139:16"},
	"philippians 4:13":     {"2 Corinthians 12:9-10", "Isaiah 40:31", "Ephesians 6:10", "John 15:5", "Colossians 1:11"},
	"proverbs 3:5-6":       {"Jeremiah 29:11", "Psalm 37:5", "Isaiah 55:8-9", "Proverbs 16:9", "Psalm 32:8"},
	"psalm 23":             {"John 10:11", "Isaiah 40:11", "Psalm 100:3", "Ezekiel 34:11-12", "Revelation 7:17"},
	"isaiah 41:10":         {"Deuteronomy 31:6", "Joshua 1:9", "Psalm 46:1", "2 Timothy 1:7", "Psalm 27:1"},
	"romans 5:8":           {"John 3:16", "1 John 4:10", "Ephesians 2:4-5", "1 Peter 3:18", "Romans 8:32"},
	"ephesians 2:8-9":      {"Romans 3:24", "Titus 3:5", "Romans 4:5", "Galatians 2:16", "2 Timothy 1:9"},
	"2 corinthians 5:17":   {"Galatians 6:15", "Ephesians 4:22-24", "Romans 6:4", "Ezekiel 36:26", "Colossians 3:9-10"},
	"romans 6:23":          {"James 1:15", "Romans 3:23", "John 3:16", "Ephesians 2:8-9", "1 John 5:11"},
	"romans 3:23":          {"Romans 6:23", "Ecclesiastes 7:20", "Isaiah 53:6", "1 John 1:8", "Psalm 14:3"},
	"romans 10:9":          {"Acts 16:31", "John 3:16", "Romans 10:13", "Acts 2:21", "1 Corinthians 12:3"},
	"galatians 2:20":       {"Philippians 1:21", "Romans 6:6", "Colossians 3:3-4", "2 Corinthians 5:15", "Romans 14:8"},
	"joshua 1:9":           {"Deuteronomy 31:6", "Isaiah 41:10", "Psalm 27:1", "Psalm 46:1-2", "2 Timothy 1:7"},
	"psalm 46:1":           {"Psalm 91:2", "Proverbs 18:10", "Isaiah 41:10", "Deuteronomy 33:27", "Nahum 1:7"},
	"matthew 11:28-30":     {"John 14:27", "Psalm 55:22", "1 Peter 5:7", "Isaiah 40:31", "Psalm 62:1"},
	"romans 8:38-39":       {"John 10:28-29", "Romans 8:28", "Ephesians 3:18-19", "Deuteronomy 31:6", "Hebrews 13:5"},
	"isaiah 40:31":         {"Philippians 4:13", "Psalm 27:14", "2 Corinthians 12:9", "Habakkuk 3:19", "Nehemiah 8:10"},
	"psalm 34:18":          {"Psalm 147:3", "Isaiah 61:1", "Psalm 51:17", "Matthew 5:4", "Isaiah 57:15"},
	"psalm 139:14":         {"Ephesians 2:10", "Genesis 1:27", "Psalm 139:13", "Jeremiah 1:5", "Isaiah 43:1"},
	"1 peter 5:7":          {"Psalm 55:22", "Philippians 4:6-7", "Matthew 6:25-27", "Psalm 37:5", "Matthew 11:28"},
	"philippians 4:6-7":    {"1 Peter 5:7", "Matthew 6:25-27", "Colossians 3:15", "Isaiah 26:3", "Psalm 55:22"},
	"hebrews 12:1-2":       {"1 Corinthians 9:24", "Philippians 3:13-14", "Galatians 5:7", "Acts 20:24", "2 Timothy 4:7"},
	"james 1:2-4":          {"Romans 5:3-5", "1 Peter 1:6-7", "Romans 8:28", "Hebrews 12:11", "2 Corinthians 4:17"},
	"2 timothy 1:7":        {"Isaiah 41:10", "Joshua 1:9", "Romans 8:15", "1 John 4:18", "Psalm 27:1"},
	"proverbs 27:17":       {"Ecclesiastes 4:9-10", "Hebrews 10:24-25", "Galatians 6:1-2", "Colossians 3:16", "1 Thessalonians 5:11"},
	"ephesians 6:10-11":    {"2 Corinthians 10:4", "1 Peter 5:8-9", "James 4:7", "Romans 13:12", "Ephesians 6:13-18"},
	"micah 6:8":            {"Deuteronomy 10:12", "James 1:27", "Isaiah 1:17", "Hosea 6:6", "Matthew 23:23"},
	"psalm 119:105":        {"Proverbs 6:23", "2 Peter 1:19", "Psalm 19:8", "Psalm 43:3", "John 8:12"},
	"lamentations 3:22-23": {"Psalm 30:5", "Psalm 36:5", "Numbers 23:19", "Hebrews 10:23", "Isaiah 54:10"},
	"john 14:6":            {"Acts 4:12", "John 10:9", "1 Timothy 2:5", "Hebrews 10:19-20", "John 11:25"},
	"matthew 28:19":        {"Mark 16:15", "Acts 1:8", "Romans 10:14-15", "Luke 24:47", "2 Corinthians 5:20"},
	"colossians 3:23-24":   {"Ephesians 6:7", "1 Corinthians 10:31", "Ecclesiastes 9:10", "Romans 12:11", "Galatians 6:9"},
	"matthew 6:33":         {"Luke 12:31", "Psalm 37:4", "Proverbs 3:9-10", "1 Kings 3:13", "Romans 14:17"},
	"genesis 1:1":          {"John 1:1-3", "Hebrews 11:3", "Psalm 33:6", "Colossians 1:16", "Isaiah 45:18"},
	"psalm 51":             {"1 John 1:9", "2 Samuel 12:13", "Psalm 32:5", "Isaiah 1:18", "Micah 7:18-19"},
	"romans 12:2":          {"Ephesians 4:23", "1 John 2:15", "Colossians 3:2", "Philippians 4:8", "1 Peter 1:14"},
	"john 10:10":           {"Romans 6:23", "John 14:6", "John 6:35", "1 John 5:12", "John 17:3"},
	"2 corinthians 12:9":   {"Philippians 4:13", "Isaiah 40:29", "2 Corinthians 4:7", "Hebrews 4:16", "1 Corinthians 1:27"},
	"revelation 21:4":      {"Isaiah 25:8", "Isaiah 65:19", "Psalm 30:5", "1 Corinthians 15:26", "Revelation 7:17"},
}
