package store

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"
)

// Seed data mirrors the original GoodFoods catalog: Indian cities and
// neighborhoods, regional cuisines, rupee price tiers. Each table is seeded
// only when empty, so Seed is safe to run repeatedly.

var citiesNeighborhoods = map[string][]string{
	"Delhi":     {"Connaught Place", "Hauz Khas", "Karol Bagh", "Saket", "Greater Kailash", "Noida Sector 18"},
	"Mumbai":    {"Bandra", "Juhu", "Colaba", "Andheri", "Lower Parel", "Powai"},
	"Bengaluru": {"Indiranagar", "Koramangala", "MG Road", "Whitefield", "Jayanagar"},
	"Hyderabad": {"Banjara Hills", "Hitech City", "Jubilee Hills", "Secunderabad"},
	"Chennai":   {"Anna Nagar", "T. Nagar", "Adyar", "Velachery"},
	"Kolkata":   {"Park Street", "Salt Lake", "Esplanade"},
	"Pune":      {"Viman Nagar", "Koregaon Park", "FC Road"},
}

var cuisines = []string{
	"North Indian", "South Indian", "Punjabi", "Bengali", "Goan", "Kerala", "Hyderabadi",
	"Andhra", "Mughlai", "Street Food", "Mumbai Style", "Kebabs", "Seafood", "Fusion", "Italian", "Chinese",
}

type priceTier struct {
	label    string
	min, max int
}

var priceTiers = []priceTier{
	{"₹", 100, 400},
	{"₹₹", 400, 1200},
	{"₹₹₹", 1200, 2500},
	{"₹₹₹₹", 2500, 10000},
}

var venueSuffixes = []string{"Bhojanalay", "Dhaba", "Kitchen", "House", "Cafe", "Bistro", "Tadka"}

var surnames = []string{
	"Sharma", "Verma", "Gupta", "Mehta", "Iyer", "Reddy", "Nair", "Chatterjee", "Bose",
	"Kapoor", "Malhotra", "Joshi", "Desai", "Kulkarni", "Patil", "Rao", "Menon", "Pillai",
	"Singh", "Chopra", "Bhatia", "Saxena", "Mishra", "Trivedi",
}

var firstNames = []string{
	"Aarav", "Vihaan", "Ananya", "Diya", "Ishaan", "Kavya", "Rohan", "Sanya", "Arjun",
	"Meera", "Kabir", "Priya", "Aditya", "Nisha", "Vikram", "Pooja", "Rahul", "Sneha",
}

var menuCategories = []string{"Starter", "Main", "Dessert", "Beverage"}

var loyaltyTiers = []string{"Silver", "Gold", "Platinum"}

var dishesByCuisine = map[string][]string{
	"North Indian": {"Butter Chicken", "Dal Makhani", "Paneer Tikka", "Aloo Paratha"},
	"South Indian": {"Masala Dosa", "Idli Sambhar", "Rasam", "Vada"},
	"Punjabi":      {"Sarson Ka Saag", "Chole Bhature", "Lassi", "Tandoori Chicken"},
	"Bengali":      {"Fish Curry", "Rosogolla", "Mishti Doi"},
	"Hyderabadi":   {"Biryani", "Haleem", "Kebabs"},
	"Andhra":       {"Spicy Chicken Fry", "Gongura Mutton"},
	"Mughlai":      {"Shahi Paneer", "Korma"},
	"Goan":         {"Fish Curry", "Prawn Balchao"},
	"Mumbai Style": {"Vada Pav", "Pav Bhaji", "Bombay Sandwich"},
	"Kebabs":       {"Seekh Kebab", "Galouti Kebab"},
	"Seafood":      {"Tandoori Prawns", "Fish Fry"},
	"Street Food":  {"Chaat", "Pani Puri", "Bhel Puri"},
	"Italian":      {"Margherita Pizza", "Pasta Arrabiata"},
	"Chinese":      {"Manchurian", "Hakka Noodles"},
	"Fusion":       {"Indo-Chinese Fried Rice", "Butter Chicken Pizza"},
}

var eventNames = []string{"Chef Special Evening", "Live Ghazal Night", "Sunday Brunch", "Wine Pairing"}

// Seed populates every empty table with generated catalog data. rngSeed
// makes the output reproducible; pass time.Now().UnixNano() for variety.
func (db *DB) Seed(ctx context.Context, rngSeed int64) error {
	rng := rand.New(rand.NewSource(rngSeed))
	if err := db.seedRestaurants(ctx, rng); err != nil {
		return fmt.Errorf("seeding restaurants: %w", err)
	}
	if err := db.seedMenus(ctx, rng); err != nil {
		return fmt.Errorf("seeding menus: %w", err)
	}
	if err := db.seedLoyaltyCustomers(ctx, rng); err != nil {
		return fmt.Errorf("seeding loyalty customers: %w", err)
	}
	if err := db.seedEvents(ctx, rng); err != nil {
		return fmt.Errorf("seeding events: %w", err)
	}
	if err := db.seedFeedback(ctx, rng); err != nil {
		return fmt.Errorf("seeding feedback: %w", err)
	}
	if err := db.seedBookings(ctx, rng); err != nil {
		return fmt.Errorf("seeding bookings: %w", err)
	}
	return nil
}

func (db *DB) tableCount(ctx context.Context, table string) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n)
	return n, err
}

func fakeName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + surnames[rng.Intn(len(surnames))]
}

func fakePhone(rng *rand.Rand) string {
	return fmt.Sprintf("+91 %d%09d", 6+rng.Intn(4), rng.Intn(1_000_000_000))
}

func (db *DB) seedRestaurants(ctx context.Context, rng *rand.Rand) error {
	if n, err := db.tableCount(ctx, "restaurants"); err != nil || n > 0 {
		return err
	}
	total := 0
	for city, neighborhoods := range citiesNeighborhoods {
		for _, nb := range neighborhoods {
			for i := 0; i < 3+rng.Intn(4); i++ {
				cuisine := cuisines[rng.Intn(len(cuisines))]
				tier := priceTiers[rng.Intn(len(priceTiers))]
				vegOnly := false
				if (cuisine == "South Indian" || cuisine == "Kerala" || cuisine == "Bengali") && rng.Float64() < 0.15 {
					vegOnly = true
				}
				r := Restaurant{
					Name:         surnames[rng.Intn(len(surnames))] + " " + venueSuffixes[rng.Intn(len(venueSuffixes))],
					Cuisine:      cuisine,
					City:         city,
					Neighborhood: nb,
					Address:      fmt.Sprintf("%d %s Road, %s", 10+rng.Intn(191), nb, city),
					Phone:        fakePhone(rng),
					Rating:       float64(35+rng.Intn(16)) / 10, // 3.5 .. 5.0
					PriceLabel:   tier.label,
					PriceInINR:   int64(tier.min + rng.Intn(tier.max-tier.min+1)),
					Capacity:     int64(20 + rng.Intn(181)),
					VegOnly:      vegOnly,
				}
				if _, err := db.InsertRestaurant(ctx, r); err != nil {
					return err
				}
				total++
			}
		}
	}
	log.Printf("[SEED] %d restaurants", total)
	return nil
}

func (db *DB) seedMenus(ctx context.Context, rng *rand.Rand) error {
	if n, err := db.tableCount(ctx, "menus"); err != nil || n > 0 {
		return err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, cuisine, price_in_inr FROM restaurants`)
	if err != nil {
		return err
	}
	defer rows.Close()
	type venue struct {
		id    int64
		c     string
		price int64
	}
	var venues []venue
	for rows.Next() {
		var v venue
		if err := rows.Scan(&v.id, &v.c, &v.price); err != nil {
			return err
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	total := 0
	for _, v := range venues {
		dishes := dishesByCuisine[v.c]
		if len(dishes) == 0 {
			dishes = dishesByCuisine["North Indian"]
		}
		base := v.price
		if base == 0 {
			base = 250
		}
		for i := 0; i < 6+rng.Intn(7); i++ {
			price := float64(base)/4 + rng.NormFloat64()*float64(base)/6
			if price < 50 {
				price = 50
			}
			item := MenuItem{
				ItemName:    dishes[rng.Intn(len(dishes))],
				Category:    menuCategories[rng.Intn(len(menuCategories))],
				Price:       float64(int(price*100)) / 100,
				IsSignature: rng.Float64() < 0.08,
			}
			if err := db.InsertMenuItem(ctx, v.id, item); err != nil {
				return err
			}
			total++
		}
	}
	log.Printf("[SEED] %d menu items", total)
	return nil
}

func (db *DB) seedLoyaltyCustomers(ctx context.Context, rng *rand.Rand) error {
	if n, err := db.tableCount(ctx, "loyalty_customers"); err != nil || n > 0 {
		return err
	}
	rows, err := db.QueryContext(ctx, `SELECT DISTINCT cuisine, city FROM restaurants`)
	if err != nil {
		return err
	}
	defer rows.Close()
	type combo struct{ cuisine, city string }
	var combos []combo
	for rows.Next() {
		var c combo
		if err := rows.Scan(&c.cuisine, &c.city); err != nil {
			return err
		}
		combos = append(combos, c)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(combos) == 0 {
		return nil
	}
	for i := 0; i < 80; i++ {
		c := combos[rng.Intn(len(combos))]
		cust := LoyaltyCustomer{
			Name:            fakeName(rng),
			Phone:           fakePhone(rng),
			Tier:            loyaltyTiers[rng.Intn(len(loyaltyTiers))],
			FavoriteCuisine: c.cuisine,
			PreferredCity:   c.city,
		}
		if err := db.InsertLoyaltyCustomer(ctx, cust); err != nil {
			return err
		}
	}
	log.Printf("[SEED] 80 loyalty customers")
	return nil
}

func (db *DB) seedEvents(ctx context.Context, rng *rand.Rand) error {
	if n, err := db.tableCount(ctx, "events"); err != nil || n > 0 {
		return err
	}
	ids, err := db.restaurantIDs(ctx)
	if err != nil {
		return err
	}
	total := 0
	now := time.Now().UTC()
	for _, id := range ids {
		if rng.Float64() >= 0.25 {
			continue
		}
		for i := 0; i < 1+rng.Intn(2); i++ {
			date := now.AddDate(0, 0, 2+rng.Intn(44)).Format("2006-01-02T15:04:05")
			if err := db.InsertEvent(ctx, id, eventNames[rng.Intn(len(eventNames))], date, "A special evening curated by the house."); err != nil {
				return err
			}
			total++
		}
	}
	if total > 0 {
		log.Printf("[SEED] %d events", total)
	}
	return nil
}

func (db *DB) seedFeedback(ctx context.Context, rng *rand.Rand) error {
	if n, err := db.tableCount(ctx, "feedback"); err != nil || n > 0 {
		return err
	}
	ids, err := db.restaurantIDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	comments := []string{
		"Lovely food and quick service.",
		"A bit crowded on weekends but worth it.",
		"The signature dishes are excellent.",
		"Portions could be bigger for the price.",
		"Great place for a family dinner.",
	}
	for i := 0; i < 180; i++ {
		id := ids[rng.Intn(len(ids))]
		rating := float64(30+rng.Intn(21)) / 10 // 3.0 .. 5.0
		if err := db.InsertFeedback(ctx, id, fakeName(rng), rating, comments[rng.Intn(len(comments))]); err != nil {
			return err
		}
	}
	log.Printf("[SEED] 180 feedback rows")
	return nil
}

func (db *DB) seedBookings(ctx context.Context, rng *rand.Rand) error {
	if n, err := db.tableCount(ctx, "bookings"); err != nil || n > 50 {
		return err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, capacity FROM restaurants LIMIT 80`)
	if err != nil {
		return err
	}
	defer rows.Close()
	type venue struct{ id, capacity int64 }
	var venues []venue
	for rows.Next() {
		var v venue
		if err := rows.Scan(&v.id, &v.capacity); err != nil {
			return err
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	total := 0
	now := time.Now().UTC()
	for _, v := range venues {
		for i := 0; i < 1+rng.Intn(4); i++ {
			slot := now.Add(time.Duration(rng.Intn(145)-48) * time.Hour).Format("2006-01-02T15:04")
			maxParty := v.capacity / 6
			if maxParty < 2 {
				maxParty = 2
			}
			if maxParty > 8 {
				maxParty = 8
			}
			b := Booking{
				RestaurantID: v.id,
				CustomerName: fakeName(rng),
				Time:         slot,
				PartySize:    1 + rng.Int63n(maxParty),
				Source:       "seed",
			}
			if _, err := db.InsertBooking(ctx, b); err != nil {
				return err
			}
			total++
		}
	}
	if total > 0 {
		log.Printf("[SEED] %d bookings", total)
	}
	return nil
}

func (db *DB) restaurantIDs(ctx context.Context) ([]int64, error) {
	rows, err := db.QueryContext(ctx, `SELECT id FROM restaurants`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
