package sqlinline

const QInsertItem = `--sql 4c841871-6058-4ece-aecc-be7142d91ac6
insert into items(id, wishlist_id, name, link, price, image_url, created_at, updated_at)
values ($1::uuid, $2::uuid, $3::text, $4::text, $5::bigint, $6::text, $7::timestamptz, $8::timestamptz);
`

const QSelectItemByID = `--sql d406995b-9c4d-45b6-8bc3-1890c84dd167
select id, wishlist_id, name, link, price, image_url, created_at, updated_at
from items
where id = $1::uuid;
`

const QSelectItemsByWishlist = `--sql 0f261caa-b412-4d25-8e68-70c93adfaa9a
select id, wishlist_id, name, link, price, image_url, created_at, updated_at
from items
where wishlist_id = $1::uuid
order by created_at;
`

const QUpdateItem = `--sql 52844286-ac0d-4d3c-b46f-de6b053ec707
update items
set name = $2::text, link = $3::text, price = $4::bigint, image_url = $5::text, updated_at = $6::timestamptz
where id = $1::uuid;
`

const QDeleteItem = `--sql e3faab48-85fc-4be3-ae59-18554e28608a
delete from items
where id = $1::uuid;
`
