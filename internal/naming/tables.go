package naming

// EmotionCodes maps ASVP-ESD emotion codes to RAVDESS emotion codes.
var EmotionCodes = map[string]string{
	"01": "01", // boredom, sigh -> neutral
	"02": "02", // neutral, calm -> calm
	"03": "03", // happy, laugh, gaggle -> happy
	"04": "04", // sad, cry -> sad
	"05": "05", // angry, grunt, frustration -> angry
	"06": "06", // fearful, scream, panic -> fearful
	"07": "07", // disgust, dislike, contempt -> disgust
	"08": "08", // surprised, gasp, amazed -> surprised
	"09": "03", // excited -> happy
	"10": "03", // pleasure -> happy
	"11": "04", // pain, groan -> sad
	"12": "04", // disappointment, disapproval -> sad
	"13": "01", // breath -> neutral
}

// VocalChannelCodes maps the vocal channel field of either dataset.
// Non-speech gets its own unified code 03.
var VocalChannelCodes = map[string]string{
	"01": "01", // speech
	"02": "03", // non-speech
}

// SubcategoryCodes maps ASVP-ESD two-digit emotion detail codes to the
// unified subcategory code. 00 means no subcategory.
var SubcategoryCodes = map[string]string{
	"13": "01", // laugh
	"23": "02", // gaggle
	"33": "03", // other happiness
	"14": "04", // cry
	"24": "05", // sigh
	"34": "06", // sniffle
	"44": "07", // suffering
	"16": "08", // scream
	"36": "09", // panic
	"15": "10", // rage
	"25": "11", // frustration
	"35": "12", // other anger
	"18": "13", // surprised
	"28": "14", // amazed
	"38": "15", // astonishment
	"48": "16", // other surprise
	"17": "17", // disgust
	"27": "18", // rejection
	"00": "00",
}

// QualityCodes lists the ASVP-ESD recording quality codes kept verbatim.
// Any other value, or a missing field, becomes QualityClean.
var QualityCodes = map[string]bool{
	"66": true,
	"77": true,
}

// QualityClean is the recording quality of every RAVDESS file.
const QualityClean = "00"

// Fixed values written for RAVDESS inputs.
const (
	DefaultRepetition  = "01"
	DefaultLanguage    = "02" // English
	DefaultSubcategory = "00"
)
