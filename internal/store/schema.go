package store

const schema = `
CREATE TABLE IF NOT EXISTS restaurants (
	id INTEGER PRIMARY KEY,
	name TEXT,
	cuisine TEXT,
	city TEXT,
	neighborhood TEXT,
	address TEXT,
	phone TEXT,
	price_label TEXT,
	price_in_inr INTEGER,
	rating REAL,
	capacity INTEGER,
	veg_only INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS bookings (
	id INTEGER PRIMARY KEY,
	restaurant_id INTEGER,
	customer_name TEXT,
	time TEXT,
	party_size INTEGER,
	source TEXT DEFAULT 'system',
	FOREIGN KEY (restaurant_id) REFERENCES restaurants(id)
);

CREATE INDEX IF NOT EXISTS idx_bookings_restaurant_time ON bookings(restaurant_id, time);

CREATE TABLE IF NOT EXISTS menus (
	id INTEGER PRIMARY KEY,
	restaurant_id INTEGER,
	item_name TEXT,
	category TEXT,
	price REAL,
	is_signature INTEGER DEFAULT 0,
	FOREIGN KEY (restaurant_id) REFERENCES restaurants(id)
);

CREATE TABLE IF NOT EXISTS loyalty_customers (
	id INTEGER PRIMARY KEY,
	name TEXT,
	phone TEXT,
	tier TEXT,
	favorite_cuisine TEXT,
	preferred_city TEXT
);

CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY,
	restaurant_id INTEGER,
	event_name TEXT,
	event_date TEXT,
	description TEXT,
	FOREIGN KEY (restaurant_id) REFERENCES restaurants(id)
);

CREATE TABLE IF NOT EXISTS feedback (
	id INTEGER PRIMARY KEY,
	restaurant_id INTEGER,
	customer_name TEXT,
	rating REAL,
	comments TEXT,
	created_at TEXT,
	FOREIGN KEY (restaurant_id) REFERENCES restaurants(id)
);
`
