package sqlinline

const QInsertWishlist = `--sql 311b8541-6d41-4a6b-b97b-5b3e027a3d7a
insert into wishlists(id, user_id, title, occasion, event_date, slug, currency, created_at, updated_at)
values ($1::uuid, $2::uuid, $3::text, $4::text, $5::date, $6::text, $7::text, $8::timestamptz, $9::timestamptz);
`

const QSelectWishlistByID = `--sql 5685beac-c992-4f3b-a694-c354ca4e042d
select id, user_id, title, occasion, event_date, slug, currency, created_at, updated_at
from wishlists
where id = $1::uuid;
`

const QSelectWishlistBySlug = `--sql 7b28f058-962d-4571-84f6-7b3ce32a6535
select id, user_id, title, occasion, event_date, slug, currency, created_at, updated_at
from wishlists
where slug = $1::text;
`

const QSelectWishlistsByUser = `--sql 49fb2ce4-80c1-4a0d-97f5-7e8cdec08ceb
select id, user_id, title, occasion, event_date, slug, currency, created_at, updated_at
from wishlists
where user_id = $1::uuid
order by created_at desc;
`

const QUpdateWishlist = `--sql 2d63e46e-647b-40d5-995b-4a6ba596897b
update wishlists
set title = $2::text, occasion = $3::text, event_date = $4::date, currency = $5::text, updated_at = $6::timestamptz
where id = $1::uuid;
`

const QDeleteWishlist = `--sql 7996dd99-ca36-49e5-9bea-562ab2ce0094
delete from wishlists
where id = $1::uuid;
`
