package database

import (
	"fmt"
	"log"

	courseModels "streeskill/models/course"

	"gorm.io/gorm"
)

type seedCourse struct {
	title       string
	description string
	thumbnail   string
	category    string
	duration    int
	instructor  string
	rating      float64
	enrolled    int
	reels       []seedReel
}

type seedReel struct {
	title   string
	hindi   string
	english string
	tamil   string
}

// Sample catalog. Every course ships with between 5 and 7 reels.
var sampleCourses = []seedCourse{
	{
		title: "Mehndi Design Basics", description: "Learn beautiful mehndi patterns from scratch",
		thumbnail: "https://picsum.photos/300/200?random=1", category: "Art",
		duration: 45, instructor: "Priya Sharma", rating: 4.8, enrolled: 1250,
		reels: []seedReel{
			{"Introduction to Mehndi", "मेहंदी का परिचय", "Introduction to Mehndi", "மெஹந்தி அறிமுகம்"},
			{"Basic Patterns", "बुनियादी पैटर्न", "Basic Patterns", "அடிப்படை வடிவங்கள்"},
			{"Floral Designs", "फूलों के डिज़ाइन", "Floral Designs", "மலர் வடிவமைப்புகள்"},
			{"Arabic Style", "अरबी शैली", "Arabic Style", "அரபு பாணி"},
			{"Bridal Patterns", "दुल्हन पैटर्न", "Bridal Patterns", "மணப்பெண் வடிவங்கள்"},
			{"Finishing Touches", "अंतिम रूप", "Finishing Touches", "இறுதி தொடுதல்கள்"},
		},
	},
	{
		title: "Embroidery Masterclass", description: "Traditional embroidery techniques for beginners",
		thumbnail: "https://picsum.photos/300/200?random=2", category: "Craft",
		duration: 60, instructor: "Lakshmi Devi", rating: 4.9, enrolled: 890,
		reels: []seedReel{
			{"Thread Selection", "धागा चयन", "Thread Selection", "நூல் தேர்வு"},
			{"Basic Stitches", "बुनियादी टांके", "Basic Stitches", "அடிப்படை தையல்கள்"},
			{"Chain Stitch", "चेन टांका", "Chain Stitch", "சங்கிலி தையல்"},
			{"Mirror Work", "शीशे का काम", "Mirror Work", "கண்ணாடி வேலை"},
			{"Border Designs", "बॉर्डर डिज़ाइन", "Border Designs", "எல்லை வடிவமைப்புகள்"},
		},
	},
	{
		title: "Pickle Making", description: "Homemade pickle recipes that sell",
		thumbnail: "https://picsum.photos/300/200?random=3", category: "Food",
		duration: 30, instructor: "Anita Kumari", rating: 4.7, enrolled: 2100,
		reels: []seedReel{
			{"Choosing Ingredients", "सामग्री चुनना", "Choosing Ingredients", "பொருட்களைத் தேர்ந்தெடுப்பது"},
			{"Mango Pickle", "आम का अचार", "Mango Pickle", "மாங்காய் ஊறுகாய்"},
			{"Lemon Pickle", "नींबू का अचार", "Lemon Pickle", "எலுமிச்சை ஊறுகாய்"},
			{"Mixed Vegetable Pickle", "मिक्स सब्जी अचार", "Mixed Vegetable Pickle", "கலந்த காய்கறி ஊறுகாய்"},
			{"Storage and Shelf Life", "भंडारण", "Storage and Shelf Life", "சேமிப்பு"},
			{"Packaging for Sale", "बिक्री के लिए पैकेजिंग", "Packaging for Sale", "விற்பனைக்கு பேக்கேஜிங்"},
			{"Pricing Your Pickles", "मूल्य निर्धारण", "Pricing Your Pickles", "விலை நிர்ணயம்"},
		},
	},
	{
		title: "Candle Making", description: "Create decorative candles at home",
		thumbnail: "https://picsum.photos/300/200?random=4", category: "Craft",
		duration: 40, instructor: "Meera Patel", rating: 4.6, enrolled: 750,
		reels: []seedReel{
			{"Wax and Wick Basics", "मोम और बाती", "Wax and Wick Basics", "மெழுகு மற்றும் திரி"},
			{"Melting and Pouring", "पिघलाना और डालना", "Melting and Pouring", "உருக்கி ஊற்றுதல்"},
			{"Adding Colors", "रंग मिलाना", "Adding Colors", "நிறங்கள் சேர்த்தல்"},
			{"Scented Candles", "सुगंधित मोमबत्तियां", "Scented Candles", "வாசனை மெழுகுவர்த்திகள்"},
			{"Decorative Shapes", "सजावटी आकार", "Decorative Shapes", "அலங்கார வடிவங்கள்"},
		},
	},
	{
		title: "Jewelry Design", description: "Handmade jewelry basics for beginners",
		thumbnail: "https://picsum.photos/300/200?random=5", category: "Fashion",
		duration: 55, instructor: "Sunita Rao", rating: 4.8, enrolled: 1100,
		reels: []seedReel{
			{"Tools and Materials", "उपकरण और सामग्री", "Tools and Materials", "கருவிகள் மற்றும் பொருட்கள்"},
			{"Bead Stringing", "मोती पिरोना", "Bead Stringing", "மணி கோர்த்தல்"},
			{"Wire Wrapping", "तार लपेटना", "Wire Wrapping", "கம்பி சுற்றுதல்"},
			{"Earring Basics", "झुमके की मूल बातें", "Earring Basics", "காதணி அடிப்படைகள்"},
			{"Necklace Design", "हार डिज़ाइन", "Necklace Design", "நெக்லஸ் வடிவமைப்பு"},
			{"Finishing and Clasps", "फिनिशिंग", "Finishing and Clasps", "முடித்தல்"},
		},
	},
}

// SeedCatalog inserts the sample courses and reels once. Reruns are no-ops:
// a course title already present is skipped entirely.
func SeedCatalog(db *gorm.DB) {
	for i, sc := range sampleCourses {
		var existing courseModels.Course
		if err := db.Where("title = ?", sc.title).First(&existing).Error; err == nil {
			continue
		}

		c := courseModels.Course{
			Title:         sc.title,
			Description:   sc.description,
			Thumbnail:     sc.thumbnail,
			Category:      sc.category,
			Duration:      sc.duration,
			Instructor:    sc.instructor,
			Rating:        sc.rating,
			EnrolledCount: sc.enrolled,
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error seeding course %q: %v", sc.title, err)
			continue
		}

		for j, sr := range sc.reels {
			reel := courseModels.Reel{
				CourseID:        c.ID,
				Title:           sr.title,
				Description:     fmt.Sprintf("Learn %s step by step", sr.title),
				VideoURL:        fmt.Sprintf("https://example.com/video%d_%d.mp4", i+1, j+1),
				Thumbnail:       fmt.Sprintf("https://picsum.photos/200/350?random=%d%d", i+1, j+1),
				Duration:        55 + (j % 3 * 5),
				ReelOrder:       j + 1,
				CaptionsHindi:   sr.hindi,
				CaptionsEnglish: sr.english,
				CaptionsTamil:   sr.tamil,
			}
			if err := db.Create(&reel).Error; err != nil {
				log.Printf("Error seeding reel %q: %v", sr.title, err)
			}
		}
	}

	log.Println("Sample catalog ready.")
}
