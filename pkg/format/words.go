package format

// Word pools for the themed formats. Pool sizes feed the entropy constants in
// format.go; changing a pool means recomputing its format's Entropy.

var memorableAdjectives = []string{
	"happy", "brave", "clever", "gentle", "wild", "calm", "bright", "swift", "silent",
	"ancient", "bold", "curious", "eager", "fierce", "graceful", "humble", "jolly", "kind",
	"lively", "mighty", "noble", "peaceful", "quick", "radiant", "serene", "tiny", "vibrant",
	"wise", "zealous", "dancing", "flying", "jumping", "running", "sleeping", "smiling",
}

var memorableNouns = []string{
	"elephant", "tiger", "dolphin", "eagle", "wolf", "bear", "fox", "owl", "river", "mountain",
	"forest", "ocean", "desert", "meadow", "canyon", "star", "moon", "sun", "planet", "comet",
	"galaxy", "universe", "castle", "tower", "bridge", "garden", "village", "city", "island",
	"dragon", "phoenix", "unicorn", "wizard", "knight", "warrior",
}

var historicalFigures = []string{
	"einstein", "newton", "curie", "darwin", "tesla", "galileo", "aristotle", "hawking",
	"edison", "franklin", "pasteur", "bohr", "faraday", "planck", "mozart", "beethoven",
	"bach", "chopin", "vivaldi", "handel", "debussy", "shakespeare", "dickens", "twain",
	"austen", "tolstoy", "hemingway", "leonardo", "michelangelo", "picasso", "vangogh",
	"rembrandt", "monet", "socrates", "plato", "confucius", "buddha", "gandhi", "mandela",
}

// "amazon" appears twice, so it is drawn twice as often as other places.
var geographicNames = []string{
	"paris", "london", "tokyo", "rome", "cairo", "sydney", "moscow", "delhi",
	"amazon", "nile", "danube", "thames", "mississippi", "ganges", "yangtze",
	"everest", "kilimanjaro", "fuji", "alps", "andes", "rockies", "himalayas",
	"sahara", "gobi", "arctic", "amazon", "serengeti", "outback", "tundra",
	"pacific", "atlantic", "indian", "mediterranean", "caribbean", "baltic",
	"manhattan", "venice", "kyoto", "marrakech", "santorini", "bali", "petra",
}

var characterNames = []string{
	"gandalf", "frodo", "aragorn", "legolas", "gollum", "bilbo", "sauron", "skywalker",
	"vader", "yoda", "solo", "kenobi", "leia", "chewie", "r2d2", "holmes", "watson",
	"moriarty", "poirot", "marple", "bond", "potter", "superman", "batman", "wonderwoman",
	"spiderman", "hulk", "thor", "ironman", "mario", "luigi", "peach", "bowser", "link",
	"zelda", "pikachu", "sonic", "tarzan", "simba", "nemo", "dory", "woody", "buzz",
	"elsa", "moana",
}

var phoneticWords = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india",
	"juliet", "kilo", "lima", "mike", "november", "oscar", "papa", "quebec", "romeo",
	"sierra", "tango", "uniform", "victor", "whiskey", "xray", "yankee", "zulu",
}

var rhymePairs = [][2]string{
	{"cat", "hat"}, {"light", "bright"}, {"shake", "bake"}, {"fox", "box"},
	{"bear", "chair"}, {"boat", "coat"}, {"fly", "sky"}, {"bee", "tree"},
	{"star", "far"}, {"cake", "lake"}, {"night", "light"}, {"house", "mouse"},
	{"tall", "wall"}, {"hook", "book"}, {"king", "ring"}, {"sun", "fun"},
	{"rock", "clock"}, {"blue", "shoe"}, {"rice", "nice"}, {"car", "far"},
	{"pear", "bear"},
}

var musicalTerms = []string{
	"allegro", "forte", "piano", "adagio", "crescendo", "staccato", "legato", "andante",
	"vivace", "presto", "moderato", "largo", "soprano", "tenor", "bass", "alto", "treble",
	"octave", "sonata", "concerto", "symphony", "opera", "quartet", "solo", "major",
	"minor", "sharp", "flat", "chord", "melody",
}

var scientificElements = []string{
	"hydrogen", "helium", "lithium", "beryllium", "boron", "carbon", "nitrogen", "oxygen",
	"fluorine", "neon", "sodium", "magnesium", "aluminum", "silicon", "phosphorus",
	"sulfur", "chlorine", "argon", "potassium", "calcium", "titanium", "iron", "cobalt",
	"nickel", "copper", "zinc", "silver", "gold", "mercury", "lead", "uranium",
}

var constellationNames = []string{
	"orion", "pegasus", "cassiopeia", "andromeda", "aquarius", "aries", "cancer",
	"capricorn", "gemini", "leo", "libra", "pisces", "sagittarius", "scorpio", "taurus",
	"virgo", "ursa", "draco", "cygnus", "lyra", "phoenix", "hydra", "centaurus",
	"perseus", "hercules", "aquila",
}

// sportsTerms contains one hyphenated entry ("slam-dunk").
var sportsTerms = []string{
	"touchdown", "homerun", "slam-dunk", "goal", "strike", "birdie", "penalty", "foul",
	"offside", "serve", "ace", "backhand", "forehand", "knockout", "sprint", "marathon",
	"hurdle", "javelin", "vault", "basket", "rebound", "assist", "block", "tackle",
	"interception", "pitcher", "batter", "goalie", "forward", "defense", "midfielder",
}

var foodAdjectives = []string{
	"spicy", "sweet", "sour", "bitter", "salty", "tangy", "creamy", "crunchy", "hot", "cold",
	"fresh", "roasted", "baked", "fried", "grilled", "steamed", "juicy", "ripe", "zesty",
	"savory", "rich", "light", "hearty", "crispy",
}

var foods = []string{
	"taco", "pizza", "burger", "pasta", "sushi", "curry", "salad", "soup", "apple", "banana",
	"orange", "grape", "cherry", "lemon", "peach", "mango", "cookie", "cake", "pie", "donut",
	"brownie", "muffin", "bread", "pastry", "cheese", "yogurt", "butter", "cream", "sauce",
	"syrup", "honey", "jam",
}
