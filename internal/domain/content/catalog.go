package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"resort-booking/internal/pkg/i18n"
)

var ErrMissingTranslations = errors.New("missing translations")

// Catalog maps every Key to text per locale.
type Catalog struct {
	texts map[i18n.Locale]map[Key]string
}

func NewCatalog(texts map[i18n.Locale]map[Key]string) *Catalog {
	return &Catalog{texts: texts}
}

// Validate reports every page key lacking text in any supported locale.
func (c *Catalog) Validate() error {
	var missing []string
	seen := map[string]bool{}
	for _, l := range i18n.Supported() {
		for _, p := range Pages() {
			for _, k := range p.Keys() {
				id := l.String() + ":" + string(k)
				if seen[id] {
					continue
				}
				seen[id] = true
				if strings.TrimSpace(c.texts[l][k]) == "" {
					missing = append(missing, id)
				}
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrMissingTranslations, strings.Join(missing, ", "))
	}
	return nil
}

// Text falls back to English, then to the key itself so a gap is visible
// rather than blank.
func (c *Catalog) Text(l i18n.Locale, k Key) string {
	if s, ok := c.texts[l][k]; ok && s != "" {
		return s
	}
	if s, ok := c.texts[i18n.English][k]; ok && s != "" {
		return s
	}
	return string(k)
}

type Bundle struct {
	Locale i18n.Locale
	Page   Page
	Texts  map[Key]string
}

func (c *Catalog) Bundle(l i18n.Locale, p Page) Bundle {
	keys := p.Keys()
	texts := make(map[Key]string, len(keys))
	for _, k := range keys {
		texts[k] = c.Text(l, k)
	}
	return Bundle{Locale: l, Page: p, Texts: texts}
}

// DefaultCatalog is the site copy. Strings with verbs are fmt templates.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[i18n.Locale]map[Key]string{
		i18n.English: {
			SiteName:     "Lakeside Resort",
			SiteTagline:  "Cabins and suites on the shore of Khövsgöl",
			NavHome:      "Home",
			NavAbout:     "About",
			NavAmenities: "Amenities",
			NavDining:    "Dining",
			NavGallery:   "Gallery",
			NavContact:   "Contact",
			NavBook:      "Book now",

			HomeHeroTitle:    "Wake up to the lake",
			HomeHeroSubtitle: "Quiet rooms, open water, mountain air",
			HomeIntro:        "A small resort on the western shore, open from June to September.",

			AboutTitle:   "About us",
			AboutHistory: "Family run since 2009, rebuilt in larch wood in 2021.",
			AboutLake:    "The lake holds almost 70% of Mongolia's fresh water and freezes solid every winter.",

			AmenitiesTitle:  "Amenities",
			AmenitiesSauna:  "Wood-fired sauna by the water",
			AmenitiesKayak:  "Kayaks and paddle boards",
			AmenitiesHiking: "Guided hikes into the taiga",
			AmenitiesHorse:  "Horse riding with local herders",

			DiningTitle:     "Dining",
			DiningBreakfast: "Breakfast is served 7:30 to 10:00",
			DiningDinner:    "Lake fish and mutton dinners from 18:00",

			GalleryTitle: "Gallery",

			ContactTitle:   "Contact",
			ContactAddress: "Khatgal, Khövsgöl province, Mongolia",
			ContactPhone:   "+976 7000 0000",

			BookingSearchTitle:   "Find a room",
			BookingCheckIn:       "Check-in",
			BookingCheckOut:      "Check-out",
			BookingAdults:        "Adults",
			BookingChildren:      "Children",
			BookingNoRooms:       "No rooms available for these dates",
			BookingRoomsLeft:     "%d rooms left",
			BookingShortfall:     "Add rooms for %d more guests",
			BookingCheckout:      "Continue to checkout",
			BookingPayWithQPay:   "Pay with QPay",
			BookingPayWithCard:   "Pay by card",
			BookingAwaitPayment:  "Scan the QR code with your banking app",
			BookingPaid:          "Payment received, see you soon",
			BookingCancelled:     "This booking was cancelled",
			AddOnBreakfast:       "Breakfast",
			AddOnAirportTransfer: "Mörön airport transfer",
			AddOnKayakRental:     "Kayak rental",
			AddOnSauna:           "Private sauna session",
			AddOnLateCheckout:    "Late checkout",
		},
		i18n.Mongolian: {
			SiteName:     "Нуурын эргийн амралт",
			SiteTagline:  "Хөвсгөлийн эрэг дээрх байшин, өрөөнүүд",
			NavHome:      "Нүүр",
			NavAbout:     "Бидний тухай",
			NavAmenities: "Үйлчилгээ",
			NavDining:    "Хоол",
			NavGallery:   "Зураг",
			NavContact:   "Холбоо барих",
			NavBook:      "Захиалах",

			HomeHeroTitle:    "Нуурын дэргэд сэрээрэй",
			HomeHeroSubtitle: "Нам гүм өрөө, цэнгэг ус, уулын агаар",
			HomeIntro:        "Баруун эрэг дээрх жижиг амралт, 6-р сараас 9-р сар хүртэл ажиллана.",

			AboutTitle:   "Бидний тухай",
			AboutHistory: "2009 оноос гэр бүлээрээ ажиллуулж, 2021 онд шинэчлэн барьсан.",
			AboutLake:    "Хөвсгөл нуур Монголын цэнгэг усны бараг 70 хувийг агуулдаг.",

			AmenitiesTitle:  "Үйлчилгээ",
			AmenitiesSauna:  "Усны эрэг дээрх модон саун",
			AmenitiesKayak:  "Каяк, сэлүүрт самбар",
			AmenitiesHiking: "Тайга руу хөтөчтэй аялал",
			AmenitiesHorse:  "Малчидтай морин аялал",

			DiningTitle:     "Хоол",
			DiningBreakfast: "Өглөөний цай 7:30-10:00",
			DiningDinner:    "Оройн хоол 18:00 цагаас",

			GalleryTitle: "Зургийн цомог",

			ContactTitle:   "Холбоо барих",
			ContactAddress: "Монгол улс, Хөвсгөл аймаг, Хатгал",
			ContactPhone:   "+976 7000 0000",

			BookingSearchTitle:   "Өрөө хайх",
			BookingCheckIn:       "Ирэх өдөр",
			BookingCheckOut:      "Гарах өдөр",
			BookingAdults:        "Том хүн",
			BookingChildren:      "Хүүхэд",
			BookingNoRooms:       "Энэ хугацаанд сул өрөө алга",
			BookingRoomsLeft:     "%d өрөө үлдсэн",
			BookingShortfall:     "Дахиад %d зочинд өрөө нэмнэ үү",
			BookingCheckout:      "Захиалга үргэлжлүүлэх",
			BookingPayWithQPay:   "QPay-ээр төлөх",
			BookingPayWithCard:   "Картаар төлөх",
			BookingAwaitPayment:  "Банкны аппаараа QR кодыг уншуулна уу",
			BookingPaid:          "Төлбөр баталгаажлаа",
			BookingCancelled:     "Захиалга цуцлагдсан",
			AddOnBreakfast:       "Өглөөний цай",
			AddOnAirportTransfer: "Мөрөн нисэх буудлын тээвэр",
			AddOnKayakRental:     "Каяк түрээс",
			AddOnSauna:           "Хувийн саун",
			AddOnLateCheckout:    "Оройтож гарах",
		},
	})
}
