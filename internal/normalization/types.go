package normalization

// View models returned to clients. Every field is always populated: strings
// default to "", numbers to 0 and lists to an empty (non-nil) slice.

type Doctor struct {
	Name            string `json:"name"`
	ImageURL        string `json:"imageUrl"`
	Specialty       string `json:"specialty"`
	ExperienceYears int    `json:"experienceYears"`
}

type Button struct {
	BtnText   string `json:"btnText"`
	BgColor   string `json:"bgColor"`
	TextColor string `json:"textColor"`
}

type WeekConfirmationStep struct {
	Heading     string `json:"heading"`
	SubHeading1 string `json:"subHeading1"`
	SubHeading2 string `json:"subHeading2"`
	Button      Button `json:"button"`
}

type DocInfoStep struct {
	Heading    string `json:"heading"`
	SubHeading string `json:"subHeading"`
	Doctor     Doctor `json:"doctor"`
	Button     Button `json:"button"`
}

type ConsentTextStep struct {
	Heading     string `json:"heading"`
	SubHeading  string `json:"subHeading"`
	ConsentText string `json:"consentText"`
	Button      Button `json:"button"`
}

type Disclaimer struct {
	Heading    string `json:"heading"`
	Heading2   string `json:"heading2"`
	SubHeading string `json:"subHeading"`
	Button     Button `json:"button"`
}

type UnlockStep struct {
	Heading    string `json:"heading"`
	SubHeading string `json:"subHeading"`
	Button     Button `json:"button"`
}

type ConsentForm struct {
	WeekConfirmation   WeekConfirmationStep `json:"weekConfirmation"`
	DocInfo            DocInfoStep          `json:"docInfo"`
	ConsentForm        ConsentTextStep      `json:"consentForm"`
	Disclaimer         []Disclaimer         `json:"disclaimer"`
	UnlockActivityCard UnlockStep           `json:"unlockActivityCard"`
}

// ---- activities ----

type MindActivity struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Benefits    string `json:"benefits"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
}

type MindActivitiesOverview struct {
	Heading        string         `json:"heading"`
	SubHeading     string         `json:"subHeading"`
	MindActivities []MindActivity `json:"mindActivities"`
}

type FitnessDescription struct {
	Benefits    string `json:"benefits"`
	Precautions string `json:"precautions"`
}

type FitnessActivity struct {
	Week         int                `json:"week"`
	Name         string             `json:"name"`
	VideoURL     string             `json:"videoUrl"`
	ThumbnailURL string             `json:"thumbnailUrl"`
	SubHeading   string             `json:"subHeading"`
	Description  FitnessDescription `json:"description"`
}

type FitnessActivities struct {
	Activities  []FitnessActivity `json:"activities"`
	ConsentForm ConsentForm       `json:"consentForm"`
}

type CardLabel struct {
	Text    string `json:"text" yaml:"text"`
	BgColor string `json:"bgColor" yaml:"bgColor"`
}

// ActivityCard is one tile of the pregnancy-coach overview.
type ActivityCard struct {
	Label   CardLabel `json:"label" yaml:"label"`
	Heading string    `json:"heading" yaml:"heading"`
	Image   string    `json:"image" yaml:"image"`
}

type Divider struct {
	Color string `json:"color" yaml:"color"`
	Label string `json:"label" yaml:"label"`
}

// CoachStaticContent holds the cards that are not authored in the CMS.
type CoachStaticContent struct {
	Divider       []Divider
	WaterCard     ActivityCard
	NutritionCard ActivityCard
	MindCard      ActivityCard
	FitnessCard   ActivityCard
}

type PregnancyCoachOverview struct {
	WeekNumber int            `json:"weekNumber"`
	DocInfo    Doctor         `json:"docInfo"`
	Divider    []Divider      `json:"divider"`
	Activities []ActivityCard `json:"activities"`
}

// ---- diet plans ----

// InfoCard is one of TitleColorListCard or ImageColorCard.
type InfoCard interface {
	isInfoCard()
}

type TitleColor struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

type TitleColorListCard struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	TitleColorList []TitleColor `json:"titleColorList"`
}

type ImageColorCard struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Color    string `json:"color"`
}

func (TitleColorListCard) isInfoCard() {}
func (ImageColorCard) isInfoCard()     {}

type LearnMore struct {
	Info   []InfoCard `json:"info"`
	Doctor Doctor     `json:"doctor"`
}

const (
	StoryFirst     = "first"
	StoryMiddle    = "middle"
	StoryCalorie   = "calorie"
	StoryNutrients = "nutrients"
)

// IntroStory is one of the four intro story card shapes.
type IntroStory interface {
	StoryID() string
}

type StoryImage struct {
	URL string `json:"url"`
}

type FirstStoryCard struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DocInfo     Doctor `json:"docInfo"`
	ImageURL    string `json:"imageUrl"`
	FooterText  string `json:"footerText"`
}

type MiddleStoryCard struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	BgColor     string       `json:"bgColor"`
	Images      []StoryImage `json:"images"`
	FooterText  string       `json:"footerText"`
}

type CalorieStoryCard struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	BgImageURL  string `json:"bgImageUrl"`
	FooterText  string `json:"footerText"`
}

type NutrientsStoryCard struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	FooterText  string `json:"footerText"`
}

func (c FirstStoryCard) StoryID() string     { return c.ID }
func (c MiddleStoryCard) StoryID() string    { return c.ID }
func (c CalorieStoryCard) StoryID() string   { return c.ID }
func (c NutrientsStoryCard) StoryID() string { return c.ID }

type DietIntroStories struct {
	Trimester int          `json:"trimester"`
	Cards     []IntroStory `json:"cards"`
}

// ---- news ----

type NewsCard struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Header     string `json:"header"`
	BgImageURL string `json:"bgImageUrl"`
	Content    string `json:"content"`
	Duration   string `json:"duration"`
	SourceLink string `json:"sourceLink"`
}
