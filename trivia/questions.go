package trivia

// questions is the curated question set, organized by difficulty.
var questions = []Question{

	// easy
	{Text: "Who built the ark?", Answers: []string{"noah"}, Difficulty: Easy, Ref: "Genesis 6:14"},
	{Text: "How many days did God take to create the world?", Answers: []string{"6", "six"}, Difficulty: Easy, Ref: "Genesis 1-2"},
	{Text: "What is the first book of the Bible?", Answers: []string{"genesis"}, Difficulty: Easy, Ref: "Genesis 1:1"},
	{Text: "What is the last book of the Bible?", Answers: []string{"revelation", "revelations"}, Difficulty: Easy, Ref: "Revelation 1:1"},
	{Text: "Who killed Goliath?", Answers: []string{"david"}, Difficulty: Easy, Ref: "1 Samuel 17:50"},
	{Text: "What was the name of Jesus' mother?", Answers: []string{"mary"}, Difficulty: Easy, Ref: "Luke 1:30-31"},
	{Text: "How many apostles did Jesus have?", Answers: []string{"12", "twelve"}, Difficulty: Easy, Ref: "Matthew 10:1-4"},
	{Text: "Who was swallowed by a great fish?", Answers: []string{"jonah"}, Difficulty: Easy, Ref: "Jonah 1:17"},
	{Text: "What did God create on the first day?", Answers: []string{"light"}, Difficulty: Easy, Ref: "Genesis 1:3"},
	{Text: "Who was the first man?", Answers: []string{"adam"}, Difficulty: Easy, Ref: "Genesis 2:7"},
	{Text: "Who was the first woman?", Answers: []string{"eve"}, Difficulty: Easy, Ref: "Genesis 3:20"},
	{Text: "What animal tempted Eve in the Garden?", Answers: []string{"serpent", "snake"}, Difficulty: Easy, Ref: "Genesis 3:1"},
	{Text: "How many commandments did God give Moses?", Answers: []string{"10", "ten"}, Difficulty: Easy, Ref: "Exodus 34:28"},
	{Text: "Who parted the Red Sea?", Answers: []string{"moses"}, Difficulty: Easy, Ref: "Exodus 14:21"},
	{Text: "What city did Jesus grow up in?", Answers: []string{"nazareth"}, Difficulty: Easy, Ref: "Matthew 2:23"},
	{Text: "Who baptized Jesus?", Answers: []string{"john", "john the baptist"}, Difficulty: Easy, Ref: "Matthew 3:13"},
	{Text: "What is the shortest verse in the Bible (in English)?", Answers: []string{"jesus wept"}, Difficulty: Easy, Ref: "John 11:35"},
	{Text: "Where was Jesus born?", Answers: []string{"bethlehem"}, Difficulty: Easy, Ref: "Matthew 2:1"},
	{Text: "What did Jesus turn water into?", Answers: []string{"wine"}, Difficulty: Easy, Ref: "John 2:9"},
	{Text: "Who denied Jesus three times?", Answers: []string{"peter", "simon peter"}, Difficulty: Easy, Ref: "Matthew 26:69-75"},
	{Text: "What garden did God place Adam and Eve in?", Answers: []string{"eden", "garden of eden"}, Difficulty: Easy, Ref: "Genesis 2:8"},
	{Text: "What is the name of the hill where Jesus was crucified?", Answers: []string{"golgotha", "calvary"}, Difficulty: Easy, Ref: "Matthew 27:33"},
	{Text: "How many days was Jesus in the tomb before He rose?", Answers: []string{"3", "three"}, Difficulty: Easy, Ref: "Matthew 12:40"},
	{Text: "What weapon did David use to defeat Goliath?", Answers: []string{"sling", "slingshot", "sling and stone"}, Difficulty: Easy, Ref: "1 Samuel 17:49"},
	{Text: "What did God use to make Eve?", Answers: []string{"rib", "adam's rib", "a rib"}, Difficulty: Easy, Ref: "Genesis 2:22"},
	{Text: "Who led the Israelites into the Promised Land after Moses?", Answers: []string{"joshua"}, Difficulty: Easy, Ref: "Joshua 1:1-2"},
	{Text: "What type of animal did Jesus ride into Jerusalem?", Answers: []string{"donkey", "colt", "donkey colt"}, Difficulty: Easy, Ref: "Matthew 21:7"},
	{Text: "Who betrayed Jesus for 30 pieces of silver?", Answers: []string{"judas", "judas iscariot"}, Difficulty: Easy, Ref: "Matthew 26:15"},
	{Text: "What did Jesus feed 5,000 people with?", Answers: []string{"bread and fish", "fish and bread", "five loaves and two fish", "loaves and fish", "bread fish", "fish bread"}, Difficulty: Easy, Ref: "Matthew 14:17-21"},
	{Text: "What did God place in the sky as a promise never to flood the earth again?", Answers: []string{"rainbow"}, Difficulty: Easy, Ref: "Genesis 9:13"},
	{Text: "What are the first three words of the Bible?", Answers: []string{"in the beginning"}, Difficulty: Easy, Ref: "Genesis 1:1"},
	{Text: "Who was the brother of Moses?", Answers: []string{"aaron"}, Difficulty: Easy, Ref: "Exodus 4:14"},
	{Text: "What was the occupation of Jesus' earthly father Joseph?", Answers: []string{"carpenter"}, Difficulty: Easy, Ref: "Matthew 13:55"},
	{Text: "On which day did God rest from creation?", Answers: []string{"7", "seven", "seventh", "7th"}, Difficulty: Easy, Ref: "Genesis 2:2"},
	{Text: "Who walked on water with Jesus?", Answers: []string{"peter"}, Difficulty: Easy, Ref: "Matthew 14:29"},
	{Text: "What did God tell Moses to take off at the burning bush?", Answers: []string{"sandals", "shoes", "his sandals", "his shoes"}, Difficulty: Easy, Ref: "Exodus 3:5"},
	{Text: "What was baby Jesus laid in after He was born?", Answers: []string{"manger"}, Difficulty: Easy, Ref: "Luke 2:7"},
	{Text: "What did the wise men follow to find baby Jesus?", Answers: []string{"star", "a star"}, Difficulty: Easy, Ref: "Matthew 2:2"},
	{Text: "Who was Abraham's wife?", Answers: []string{"sarah", "sarai"}, Difficulty: Easy, Ref: "Genesis 17:15"},
	{Text: "Which apostle is known as 'doubting'?", Answers: []string{"thomas"}, Difficulty: Easy, Ref: "John 20:25"},
	{Text: "What was the name of the angel who told Mary she would have a son?", Answers: []string{"gabriel"}, Difficulty: Easy, Ref: "Luke 1:26"},
	{Text: "What river was Jesus baptized in?", Answers: []string{"jordan", "jordan river"}, Difficulty: Easy, Ref: "Matthew 3:13"},
	{Text: "Where did Jesus perform His first miracle?", Answers: []string{"cana", "wedding at cana"}, Difficulty: Easy, Ref: "John 2:1-11"},
	{Text: "What creature spoke to Balaam?", Answers: []string{"donkey", "his donkey", "a donkey"}, Difficulty: Easy, Ref: "Numbers 22:28"},
	{Text: "What did the burning bush do that was unusual?", Answers: []string{"did not burn up", "was not consumed", "didn't burn", "not consumed"}, Difficulty: Easy, Ref: "Exodus 3:2"},
	{Text: "Who was the strongest man in the Bible?", Answers: []string{"samson"}, Difficulty: Easy, Ref: "Judges 16:3"},
	{Text: "What did Jesus walk on during a storm?", Answers: []string{"water", "the water", "the sea"}, Difficulty: Easy, Ref: "Matthew 14:25"},
	{Text: "How many people went on Noah's ark?", Answers: []string{"8", "eight"}, Difficulty: Easy, Ref: "1 Peter 3:20"},
	{Text: "Who was thrown into a den of lions?", Answers: []string{"daniel"}, Difficulty: Easy, Ref: "Daniel 6:16"},
	{Text: "What did Jesus say to calm the storm?", Answers: []string{"peace be still", "quiet be still", "be still"}, Difficulty: Easy, Ref: "Mark 4:39"},

	// medium
	{Text: "What are the four Gospels?", Answers: []string{"matthew mark luke john", "matthew, mark, luke, john", "matthew mark luke and john"}, Difficulty: Medium, Ref: "New Testament"},
	{Text: "Who wrote most of the New Testament epistles?", Answers: []string{"paul", "apostle paul", "saul"}, Difficulty: Medium, Ref: "Romans - Philemon"},
	{Text: "What was Paul's name before his conversion?", Answers: []string{"saul"}, Difficulty: Medium, Ref: "Acts 13:9"},
	{Text: "On what road did Paul have his conversion experience?", Answers: []string{"damascus", "road to damascus"}, Difficulty: Medium, Ref: "Acts 9:3"},
	{Text: "How many books are in the Bible?", Answers: []string{"66", "sixty-six", "sixty six"}, Difficulty: Medium, Ref: "The Bible"},
	{Text: "What mountain did Moses receive the Ten Commandments on?", Answers: []string{"sinai", "mount sinai", "horeb"}, Difficulty: Medium, Ref: "Exodus 19:20"},
	{Text: "How many days was Jesus in the wilderness being tempted?", Answers: []string{"40", "forty"}, Difficulty: Medium, Ref: "Matthew 4:2"},
	{Text: "What giant army did Gideon defeat with only 300 men?", Answers: []string{"midianites", "midian"}, Difficulty: Medium, Ref: "Judges 7:7"},
	{Text: "Who was the oldest person in the Bible?", Answers: []string{"methuselah"}, Difficulty: Medium, Ref: "Genesis 5:27"},
	{Text: "What did Esau sell his birthright for?", Answers: []string{"stew", "lentil stew", "pottage", "bowl of stew", "lentils", "soup"}, Difficulty: Medium, Ref: "Genesis 25:34"},
	{Text: "Which disciple was a tax collector?", Answers: []string{"matthew", "levi"}, Difficulty: Medium, Ref: "Matthew 9:9"},
	{Text: "What is the longest book of the Bible?", Answers: []string{"psalms", "psalm"}, Difficulty: Medium, Ref: "Psalms"},
	{Text: "Who interpreted Pharaoh's dreams about seven fat and seven thin cows?", Answers: []string{"joseph"}, Difficulty: Medium, Ref: "Genesis 41:25"},
	{Text: "How many plagues did God send on Egypt?", Answers: []string{"10", "ten"}, Difficulty: Medium, Ref: "Exodus 7-12"},
	{Text: "What was the final plague on Egypt?", Answers: []string{"death of the firstborn", "firstborn", "death of firstborn", "killing of firstborn"}, Difficulty: Medium, Ref: "Exodus 12:29"},
	{Text: "Who replaced Judas as the 12th apostle?", Answers: []string{"matthias"}, Difficulty: Medium, Ref: "Acts 1:26"},
	{Text: "What fruit is associated with the Tree of Knowledge?", Answers: []string{"fruit", "apple", "forbidden fruit"}, Difficulty: Medium, Ref: "Genesis 3:6"},
	{Text: "How many days did Jesus stay on earth after His resurrection?", Answers: []string{"40", "forty"}, Difficulty: Medium, Ref: "Acts 1:3"},
	{Text: "What did manna taste like?", Answers: []string{"honey", "wafers made with honey", "honey wafers", "wafers"}, Difficulty: Medium, Ref: "Exodus 16:31"},
	{Text: "What were the names of Adam and Eve's first two sons?", Answers: []string{"cain and abel", "abel and cain"}, Difficulty: Medium, Ref: "Genesis 4:1-2"},
	{Text: "Who was David's best friend?", Answers: []string{"jonathan"}, Difficulty: Medium, Ref: "1 Samuel 18:1"},
	{Text: "What was the first plague God sent on Egypt?", Answers: []string{"water to blood", "blood", "nile turned to blood", "water turned to blood"}, Difficulty: Medium, Ref: "Exodus 7:20"},
	{Text: "Who was the wisest king in the Bible?", Answers: []string{"solomon"}, Difficulty: Medium, Ref: "1 Kings 4:30"},
	{Text: "What did Solomon ask God for?", Answers: []string{"wisdom"}, Difficulty: Medium, Ref: "1 Kings 3:9"},
	{Text: "How many brothers did Joseph (son of Jacob) have?", Answers: []string{"11", "eleven"}, Difficulty: Medium, Ref: "Genesis 37:9"},
	{Text: "What coat did Jacob give to Joseph?", Answers: []string{"coat of many colors", "many colors", "colorful coat", "coat of many colours"}, Difficulty: Medium, Ref: "Genesis 37:3"},
	{Text: "Who was Ruth's mother-in-law?", Answers: []string{"naomi"}, Difficulty: Medium, Ref: "Ruth 1:2"},
	{Text: "What country did Ruth come from?", Answers: []string{"moab"}, Difficulty: Medium, Ref: "Ruth 1:4"},
	{Text: "Who cut Samson's hair?", Answers: []string{"delilah"}, Difficulty: Medium, Ref: "Judges 16:19"},
	{Text: "What was the name of Abraham's first son?", Answers: []string{"ishmael"}, Difficulty: Medium, Ref: "Genesis 16:15"},
	{Text: "What was Abraham's name before God changed it?", Answers: []string{"abram"}, Difficulty: Medium, Ref: "Genesis 17:5"},
	{Text: "Who was the mother of Ishmael?", Answers: []string{"hagar"}, Difficulty: Medium, Ref: "Genesis 16:15"},
	{Text: "What book comes right after the four Gospels?", Answers: []string{"acts", "acts of the apostles"}, Difficulty: Medium, Ref: "Acts 1:1"},
	{Text: "How many of each animal did Noah take on the ark?", Answers: []string{"2", "two"}, Difficulty: Medium, Ref: "Genesis 6:19"},
	{Text: "What material was Noah's ark made of?", Answers: []string{"gopher wood", "gopherwood", "cypress", "cypress wood"}, Difficulty: Medium, Ref: "Genesis 6:14"},
	{Text: "What bird did Noah first send out from the ark?", Answers: []string{"raven"}, Difficulty: Medium, Ref: "Genesis 8:7"},
	{Text: "What bird brought back an olive branch to Noah?", Answers: []string{"dove"}, Difficulty: Medium, Ref: "Genesis 8:11"},
	{Text: "What did God rename Jacob?", Answers: []string{"israel"}, Difficulty: Medium, Ref: "Genesis 32:28"},
	{Text: "Who was Isaac's wife?", Answers: []string{"rebekah", "rebecca"}, Difficulty: Medium, Ref: "Genesis 24:67"},
	{Text: "What apostle was called 'the Rock' by Jesus?", Answers: []string{"peter", "simon peter"}, Difficulty: Medium, Ref: "Matthew 16:18"},
	{Text: "What did Jesus say is the greatest commandment?", Answers: []string{"love the lord your god", "love god", "love the lord"}, Difficulty: Medium, Ref: "Matthew 22:37"},
	{Text: "How many loaves of bread did Jesus use to feed the 5,000?", Answers: []string{"5", "five"}, Difficulty: Medium, Ref: "Matthew 14:17"},
	{Text: "What kind of tree did Zacchaeus climb to see Jesus?", Answers: []string{"sycamore", "sycamore fig", "sycamore tree"}, Difficulty: Medium, Ref: "Luke 19:4"},
	{Text: "What happened to Lot's wife when she looked back at Sodom?", Answers: []string{"turned to salt", "pillar of salt", "became a pillar of salt", "turned into a pillar of salt", "salt"}, Difficulty: Medium, Ref: "Genesis 19:26"},
	{Text: "Who anointed David as king?", Answers: []string{"samuel"}, Difficulty: Medium, Ref: "1 Samuel 16:13"},
	{Text: "What instrument did David play?", Answers: []string{"harp", "lyre"}, Difficulty: Medium, Ref: "1 Samuel 16:23"},
	{Text: "What part of his body did Jacob injure while wrestling with God?", Answers: []string{"hip", "thigh", "hip socket"}, Difficulty: Medium, Ref: "Genesis 32:25"},
	{Text: "How many spies did Moses send into Canaan?", Answers: []string{"12", "twelve"}, Difficulty: Medium, Ref: "Numbers 13:1-16"},
	{Text: "Who were the two faithful spies?", Answers: []string{"joshua and caleb", "caleb and joshua"}, Difficulty: Medium, Ref: "Numbers 14:6"},
	{Text: "What happened when Joshua marched around the walls of Jericho?", Answers: []string{"walls fell down", "they fell", "walls collapsed", "the walls fell"}, Difficulty: Medium, Ref: "Joshua 6:20"},
	{Text: "How many times did the Israelites march around Jericho on the last day?", Answers: []string{"7", "seven"}, Difficulty: Medium, Ref: "Joshua 6:15"},
	{Text: "What parable talks about a man who was beaten and left on the road?", Answers: []string{"good samaritan", "the good samaritan"}, Difficulty: Medium, Ref: "Luke 10:30-37"},
	{Text: "What is the 23rd Psalm about?", Answers: []string{"the lord is my shepherd", "shepherd", "the lord my shepherd"}, Difficulty: Medium, Ref: "Psalm 23:1"},
	{Text: "Who wrote the book of Acts?", Answers: []string{"luke"}, Difficulty: Medium, Ref: "Acts 1:1"},
	{Text: "Who was the twin brother of Jacob?", Answers: []string{"esau"}, Difficulty: Medium, Ref: "Genesis 25:25-26"},
	{Text: "What was the name of the garden where Jesus prayed before His arrest?", Answers: []string{"gethsemane", "garden of gethsemane"}, Difficulty: Medium, Ref: "Matthew 26:36"},
	{Text: "Who asked for Jesus' body after the crucifixion?", Answers: []string{"joseph of arimathea", "joseph"}, Difficulty: Medium, Ref: "Matthew 27:57-58"},
	{Text: "What was Rahab's occupation?", Answers: []string{"prostitute", "harlot"}, Difficulty: Medium, Ref: "Joshua 2:1"},
	{Text: "What city was known for its great wall that Rahab lived on?", Answers: []string{"jericho"}, Difficulty: Medium, Ref: "Joshua 2:1"},
	{Text: "What body of water did the Israelites cross on dry ground to enter the Promised Land?", Answers: []string{"jordan", "jordan river"}, Difficulty: Medium, Ref: "Joshua 3:17"},
	{Text: "What sign did God give to confirm Gideon's calling?", Answers: []string{"fleece", "wet fleece", "fleece of wool"}, Difficulty: Medium, Ref: "Judges 6:37"},
	{Text: "What did the people build to try to reach heaven?", Answers: []string{"tower of babel", "babel", "a tower"}, Difficulty: Medium, Ref: "Genesis 11:4"},
	{Text: "What happened at the Tower of Babel?", Answers: []string{"languages were confused", "god confused their language", "confused languages", "language confused"}, Difficulty: Medium, Ref: "Genesis 11:7"},
	{Text: "In the Parable of the Prodigal Son, what animal food did the son eat?", Answers: []string{"pig food", "pig pods", "pods", "husks", "swine food", "pig slop", "slop", "carob pods"}, Difficulty: Medium, Ref: "Luke 15:16"},
	{Text: "What prison did Paul and Silas sing hymns in before an earthquake opened the doors?", Answers: []string{"philippi", "philippian jail", "philippian prison"}, Difficulty: Medium, Ref: "Acts 16:25-26"},
	{Text: "What is the Fruit of the Spirit passage reference?", Answers: []string{"galatians 5", "galatians 5:22", "galatians 5:22-23"}, Difficulty: Medium, Ref: "Galatians 5:22-23"},
	{Text: "How many of the spies gave a good report about Canaan?", Answers: []string{"2", "two"}, Difficulty: Medium, Ref: "Numbers 14:6-8"},
	{Text: "What was the name of the sea Jesus walked on?", Answers: []string{"galilee", "sea of galilee"}, Difficulty: Medium, Ref: "Matthew 14:25"},
	{Text: "Who was raised from the dead by Jesus after being in the tomb four days?", Answers: []string{"lazarus"}, Difficulty: Medium, Ref: "John 11:43-44"},
	{Text: "What psalm begins 'The Lord is my shepherd'?", Answers: []string{"psalm 23", "psalms 23", "23"}, Difficulty: Medium, Ref: "Psalm 23:1"},

	// hard
	{Text: "What were the names of the two pillars in Solomon's temple?", Answers: []string{"jachin and boaz", "boaz and jachin", "jachin boaz"}, Difficulty: Hard, Ref: "1 Kings 7:21"},
	{Text: "Who was the only female judge of Israel?", Answers: []string{"deborah"}, Difficulty: Hard, Ref: "Judges 4:4"},
	{Text: "What is the longest chapter in the Bible?", Answers: []string{"psalm 119", "psalms 119"}, Difficulty: Hard, Ref: "Psalm 119"},
	{Text: "How old was Methuselah when he died?", Answers: []string{"969"}, Difficulty: Hard, Ref: "Genesis 5:27"},
	{Text: "What queen visited Solomon to test his wisdom?", Answers: []string{"sheba", "queen of sheba"}, Difficulty: Hard, Ref: "1 Kings 10:1"},
	{Text: "Who was the first king of Israel?", Answers: []string{"saul"}, Difficulty: Hard, Ref: "1 Samuel 10:1"},
	{Text: "How many sons did Jacob have?", Answers: []string{"12", "twelve"}, Difficulty: Hard, Ref: "Genesis 35:22"},
	{Text: "What Old Testament prophet was taken to heaven in a chariot of fire?", Answers: []string{"elijah"}, Difficulty: Hard, Ref: "2 Kings 2:11"},
	{Text: "What is the shortest chapter in the Bible?", Answers: []string{"psalm 117", "psalms 117"}, Difficulty: Hard, Ref: "Psalm 117"},
	{Text: "What were the names of Moses' siblings?", Answers: []string{"aaron and miriam", "miriam and aaron", "aaron miriam"}, Difficulty: Hard, Ref: "Exodus 15:20"},
	{Text: "Who said 'Am I my brother's keeper?'", Answers: []string{"cain"}, Difficulty: Hard, Ref: "Genesis 4:9"},
	{Text: "What book comes right before Revelation?", Answers: []string{"jude"}, Difficulty: Hard, Ref: "Jude 1:1"},
	{Text: "What prophet was commanded to marry an unfaithful woman?", Answers: []string{"hosea"}, Difficulty: Hard, Ref: "Hosea 1:2"},
	{Text: "Who was the father of John the Baptist?", Answers: []string{"zechariah", "zacharias", "zachariah"}, Difficulty: Hard, Ref: "Luke 1:13"},
	{Text: "What two Old Testament figures appeared with Jesus at the Transfiguration?", Answers: []string{"moses and elijah", "elijah and moses", "moses elijah"}, Difficulty: Hard, Ref: "Matthew 17:3"},
	{Text: "What church in Revelation was told it was 'lukewarm'?", Answers: []string{"laodicea", "laodicean", "laodiceans"}, Difficulty: Hard, Ref: "Revelation 3:16"},
	{Text: "What is the 'Armor of God' passage reference?", Answers: []string{"ephesians 6", "ephesians 6:10-18", "ephesians 6:10", "eph 6"}, Difficulty: Hard, Ref: "Ephesians 6:10-18"},
	{Text: "How many books are in the Old Testament?", Answers: []string{"39", "thirty-nine", "thirty nine"}, Difficulty: Hard, Ref: "Old Testament"},
	{Text: "How many books are in the New Testament?", Answers: []string{"27", "twenty-seven", "twenty seven"}, Difficulty: Hard, Ref: "New Testament"},
	{Text: "Who was the Roman governor who sentenced Jesus to death?", Answers: []string{"pilate", "pontius pilate"}, Difficulty: Hard, Ref: "Matthew 27:26"},
	{Text: "What prophet saw a valley of dry bones come to life?", Answers: []string{"ezekiel"}, Difficulty: Hard, Ref: "Ezekiel 37:1-10"},
	{Text: "What were the names of Daniel's three friends thrown into the fiery furnace?", Answers: []string{"shadrach meshach abednego", "shadrach, meshach, and abednego", "shadrach meshach and abednego"}, Difficulty: Hard, Ref: "Daniel 3:12"},
	{Text: "Who was the prophet that confronted King David about his sin with Bathsheba?", Answers: []string{"nathan"}, Difficulty: Hard, Ref: "2 Samuel 12:1"},
	{Text: "How many churches are addressed in the book of Revelation?", Answers: []string{"7", "seven"}, Difficulty: Hard, Ref: "Revelation 2-3"},
	{Text: "What disciple was called 'the disciple whom Jesus loved'?", Answers: []string{"john"}, Difficulty: Hard, Ref: "John 13:23"},
	{Text: "What is the name of the place where the final battle is prophesied in Revelation?", Answers: []string{"armageddon", "har-magedon", "megiddo"}, Difficulty: Hard, Ref: "Revelation 16:16"},
	{Text: "Who was the king that tried to kill baby Jesus?", Answers: []string{"herod", "king herod", "herod the great"}, Difficulty: Hard, Ref: "Matthew 2:16"},
	{Text: "What was the name of Abraham's nephew?", Answers: []string{"lot"}, Difficulty: Hard, Ref: "Genesis 12:5"},
	{Text: "What Old Testament book never mentions the name of God?", Answers: []string{"esther"}, Difficulty: Hard, Ref: "Esther"},
	{Text: "What prophet was fed by ravens?", Answers: []string{"elijah"}, Difficulty: Hard, Ref: "1 Kings 17:6"},
	{Text: "What prophet succeeded Elijah?", Answers: []string{"elisha"}, Difficulty: Hard, Ref: "2 Kings 2:13-15"},
	{Text: "What woman hid the Israelite spies in Jericho?", Answers: []string{"rahab"}, Difficulty: Hard, Ref: "Joshua 2:6"},
	{Text: "Who was the son of David that tried to steal the throne?", Answers: []string{"absalom"}, Difficulty: Hard, Ref: "2 Samuel 15:10"},
	{Text: "What did God tell Abraham to sacrifice on Mount Moriah?", Answers: []string{"isaac", "his son", "his son isaac"}, Difficulty: Hard, Ref: "Genesis 22:2"},
	{Text: "What animal was provided as a substitute sacrifice for Isaac?", Answers: []string{"ram", "a ram"}, Difficulty: Hard, Ref: "Genesis 22:13"},
	{Text: "Who dreamed about a ladder reaching to heaven?", Answers: []string{"jacob"}, Difficulty: Hard, Ref: "Genesis 28:12"},
	{Text: "What two cities did God destroy with fire and brimstone?", Answers: []string{"sodom and gomorrah", "gomorrah and sodom"}, Difficulty: Hard, Ref: "Genesis 19:24"},
	{Text: "What book of the Bible is a love poem?", Answers: []string{"song of solomon", "song of songs"}, Difficulty: Hard, Ref: "Song of Solomon 1:1"},
	{Text: "How many pieces of silver was Joseph sold for by his brothers?", Answers: []string{"20", "twenty"}, Difficulty: Hard, Ref: "Genesis 37:28"},
	{Text: "What island was Paul shipwrecked on?", Answers: []string{"malta"}, Difficulty: Hard, Ref: "Acts 28:1"},
	{Text: "What was the name of Timothy's grandmother?", Answers: []string{"lois"}, Difficulty: Hard, Ref: "2 Timothy 1:5"},
	{Text: "What was the name of Timothy's mother?", Answers: []string{"eunice"}, Difficulty: Hard, Ref: "2 Timothy 1:5"},
	{Text: "Who was the high priest who questioned Jesus before His crucifixion?", Answers: []string{"caiaphas"}, Difficulty: Hard, Ref: "Matthew 26:57"},
	{Text: "What field was bought with Judas' 30 pieces of silver?", Answers: []string{"field of blood", "akeldama", "potter's field"}, Difficulty: Hard, Ref: "Acts 1:19"},
	{Text: "Who was the first Christian martyr?", Answers: []string{"stephen"}, Difficulty: Hard, Ref: "Acts 7:59-60"},
	{Text: "What Babylonian king went mad and ate grass like an animal?", Answers: []string{"nebuchadnezzar"}, Difficulty: Hard, Ref: "Daniel 4:33"},
	{Text: "What does 'Immanuel' mean?", Answers: []string{"god with us", "god is with us"}, Difficulty: Hard, Ref: "Matthew 1:23"},
	{Text: "How many years did the Israelites wander in the wilderness?", Answers: []string{"40", "forty"}, Difficulty: Hard, Ref: "Numbers 14:33"},
	{Text: "What prophet challenged the prophets of Baal on Mount Carmel?", Answers: []string{"elijah"}, Difficulty: Hard, Ref: "1 Kings 18:19"},
	{Text: "What was written on the wall at Belshazzar's feast?", Answers: []string{"mene mene tekel upharsin", "mene mene tekel parsin", "mene tekel"}, Difficulty: Hard, Ref: "Daniel 5:25"},
	{Text: "Who interpreted the writing on the wall for Belshazzar?", Answers: []string{"daniel"}, Difficulty: Hard, Ref: "Daniel 5:26"},
	{Text: "Who was the first person to see the risen Jesus?", Answers: []string{"mary magdalene", "mary"}, Difficulty: Hard, Ref: "Mark 16:9"},
	{Text: "What did Elisha ask for from Elijah before he was taken up?", Answers: []string{"double portion", "double portion of his spirit", "double portion of your spirit"}, Difficulty: Hard, Ref: "2 Kings 2:9"},
	{Text: "What tribe of Israel served as the priests?", Answers: []string{"levi", "levites", "tribe of levi"}, Difficulty: Hard, Ref: "Numbers 3:6"},
	{Text: "What prophet was thrown into a cistern of mud?", Answers: []string{"jeremiah"}, Difficulty: Hard, Ref: "Jeremiah 38:6"},
	{Text: "What Ethiopian official did Philip baptize?", Answers: []string{"eunuch", "ethiopian eunuch", "the eunuch"}, Difficulty: Hard, Ref: "Acts 8:38"},
	{Text: "What is the name of the pool in Jerusalem where Jesus healed a blind man?", Answers: []string{"siloam", "pool of siloam"}, Difficulty: Hard, Ref: "John 9:7"},
	{Text: "How many baskets of leftovers were collected after Jesus fed the 5,000?", Answers: []string{"12", "twelve"}, Difficulty: Hard, Ref: "Matthew 14:20"},
	{Text: "What woman was the first convert in Europe mentioned in Acts?", Answers: []string{"lydia"}, Difficulty: Hard, Ref: "Acts 16:14"},
	{Text: "What was the name of Hosea's unfaithful wife?", Answers: []string{"gomer"}, Difficulty: Hard, Ref: "Hosea 1:3"},
	{Text: "What is the book of Proverbs primarily attributed to?", Answers: []string{"solomon", "king solomon"}, Difficulty: Hard, Ref: "Proverbs 1:1"},
	{Text: "What magician tried to buy the power of the Holy Spirit?", Answers: []string{"simon", "simon magus", "simon the sorcerer"}, Difficulty: Hard, Ref: "Acts 8:18-19"},
	{Text: "What is the middle chapter of the Bible?", Answers: []string{"psalm 118", "psalms 118"}, Difficulty: Hard, Ref: "Psalm 118"},
	{Text: "What prophet was told to bake bread over cow dung?", Answers: []string{"ezekiel"}, Difficulty: Hard, Ref: "Ezekiel 4:15"},
	{Text: "What city was Saul traveling to when Jesus appeared to him?", Answers: []string{"damascus"}, Difficulty: Hard, Ref: "Acts 9:3"},
	{Text: "Who had a coat of camel's hair and ate locusts and wild honey?", Answers: []string{"john the baptist", "john"}, Difficulty: Hard, Ref: "Matthew 3:4"},
	{Text: "What was the last thing Jesus said on the cross according to Luke?", Answers: []string{"father into your hands i commit my spirit", "into your hands i commit my spirit", "into thy hands i commend my spirit"}, Difficulty: Hard, Ref: "Luke 23:46"},
	{Text: "How many wise men visited baby Jesus?", Answers: []string{"the bible doesn't say", "unknown", "doesn't say", "it doesn't say", "bible doesn't say", "we don't know"}, Difficulty: Hard, Ref: "Matthew 2:1"},
	{Text: "What Old Testament figure was sold into slavery by his brothers and later became second-in-command of Egypt?", Answers: []string{"joseph"}, Difficulty: Hard, Ref: "Genesis 41:41"},
}
