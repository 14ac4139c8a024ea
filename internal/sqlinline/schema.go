package sqlinline

// SchemaStatements is applied in order at startup. Statements are
// idempotent so restarts are safe.
var SchemaStatements = []string{
	QCreateUsersTable,
	QCreateWishlistsTable,
	QCreateItemsTable,
	QCreateContributionsTable,
}

const QCreateUsersTable = `--sql dd98039d-527d-4dac-bf7d-ace88129a86b
create table if not exists users (
	id uuid primary key,
	email text not null unique,
	password_hash text not null,
	display_name text,
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
);
`

const QCreateWishlistsTable = `--sql 126dbf26-0aee-4c4b-94c2-a314537673a3
create table if not exists wishlists (
	id uuid primary key,
	user_id uuid not null references users(id) on delete cascade,
	title text not null,
	occasion text,
	event_date date,
	slug text not null unique,
	currency text not null default 'EUR',
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
);
`

const QCreateItemsTable = `--sql 461f54bb-552f-498d-83e8-8cb361af605b
create table if not exists items (
	id uuid primary key,
	wishlist_id uuid not null references wishlists(id) on delete cascade,
	name text not null,
	link text,
	price bigint not null check (price > 0),
	image_url text,
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
);
`

const QCreateContributionsTable = `--sql 6c21aaf6-be52-465b-9bb9-94378d55d881
create table if not exists contributions (
	id uuid primary key,
	item_id uuid not null references items(id) on delete cascade,
	user_id uuid not null references users(id) on delete cascade,
	amount bigint not null check (amount >= 0),
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now(),
	unique (item_id, user_id)
);
`
