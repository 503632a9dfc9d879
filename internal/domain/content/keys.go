package content

// Key enumerates every string the site renders. Adding a key without
// translations fails Validate at startup.
type Key string

const (
	SiteName    Key = "site.name"
	SiteTagline Key = "site.tagline"

	NavHome      Key = "nav.home"
	NavAbout     Key = "nav.about"
	NavAmenities Key = "nav.amenities"
	NavDining    Key = "nav.dining"
	NavGallery   Key = "nav.gallery"
	NavContact   Key = "nav.contact"
	NavBook      Key = "nav.book"

	HomeHeroTitle    Key = "home.hero.title"
	HomeHeroSubtitle Key = "home.hero.subtitle"
	HomeIntro        Key = "home.intro"

	AboutTitle   Key = "about.title"
	AboutHistory Key = "about.history"
	AboutLake    Key = "about.lake"

	AmenitiesTitle  Key = "amenities.title"
	AmenitiesSauna  Key = "amenities.sauna"
	AmenitiesKayak  Key = "amenities.kayak"
	AmenitiesHiking Key = "amenities.hiking"
	AmenitiesHorse  Key = "amenities.horse"

	DiningTitle     Key = "dining.title"
	DiningBreakfast Key = "dining.breakfast"
	DiningDinner    Key = "dining.dinner"

	GalleryTitle Key = "gallery.title"

	ContactTitle   Key = "contact.title"
	ContactAddress Key = "contact.address"
	ContactPhone   Key = "contact.phone"

	BookingSearchTitle   Key = "booking.search.title"
	BookingCheckIn       Key = "booking.check_in"
	BookingCheckOut      Key = "booking.check_out"
	BookingAdults        Key = "booking.adults"
	BookingChildren      Key = "booking.children"
	BookingNoRooms       Key = "booking.no_rooms"
	BookingRoomsLeft     Key = "booking.rooms_left"
	BookingShortfall     Key = "booking.shortfall"
	BookingCheckout      Key = "booking.checkout"
	BookingPayWithQPay   Key = "booking.pay_qpay"
	BookingPayWithCard   Key = "booking.pay_card"
	BookingAwaitPayment  Key = "booking.await_payment"
	BookingPaid          Key = "booking.paid"
	BookingCancelled     Key = "booking.cancelled"
	AddOnBreakfast       Key = "addon.breakfast"
	AddOnAirportTransfer Key = "addon.airport_transfer"
	AddOnKayakRental     Key = "addon.kayak_rental"
	AddOnSauna           Key = "addon.sauna"
	AddOnLateCheckout    Key = "addon.late_checkout"
)

// Page groups the keys a page needs.
type Page string

const (
	PageHome      Page = "home"
	PageAbout     Page = "about"
	PageAmenities Page = "amenities"
	PageDining    Page = "dining"
	PageGallery   Page = "gallery"
	PageContact   Page = "contact"
	PageBooking   Page = "booking"
)

var common = []Key{SiteName, SiteTagline, NavHome, NavAbout, NavAmenities, NavDining, NavGallery, NavContact, NavBook}

var pages = map[Page][]Key{
	PageHome:      {HomeHeroTitle, HomeHeroSubtitle, HomeIntro},
	PageAbout:     {AboutTitle, AboutHistory, AboutLake},
	PageAmenities: {AmenitiesTitle, AmenitiesSauna, AmenitiesKayak, AmenitiesHiking, AmenitiesHorse},
	PageDining:    {DiningTitle, DiningBreakfast, DiningDinner},
	PageGallery:   {GalleryTitle},
	PageContact:   {ContactTitle, ContactAddress, ContactPhone},
	PageBooking: {
		BookingSearchTitle, BookingCheckIn, BookingCheckOut, BookingAdults, BookingChildren,
		BookingNoRooms, BookingRoomsLeft, BookingShortfall, BookingCheckout,
		BookingPayWithQPay, BookingPayWithCard, BookingAwaitPayment, BookingPaid, BookingCancelled,
		AddOnBreakfast, AddOnAirportTransfer, AddOnKayakRental, AddOnSauna, AddOnLateCheckout,
	},
}

func ParsePage(s string) (Page, bool) {
	p := Page(s)
	_, ok := pages[p]
	return p, ok
}

func Pages() []Page {
	return []Page{PageHome, PageAbout, PageAmenities, PageDining, PageGallery, PageContact, PageBooking}
}

// Keys returns the shared keys followed by the page's own.
func (p Page) Keys() []Key {
	own := pages[p]
	out := make([]Key, 0, len(common)+len(own))
	out = append(out, common...)
	return append(out, own...)
}
