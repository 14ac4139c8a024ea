package sqlinline

const QInsertUser = `--sql 4ea46de3-90b3-4737-a069-567982c687e3
insert into users(id, email, password_hash, display_name, created_at, updated_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::timestamptz, $6::timestamptz);
`

const QSelectUserByID = `--sql f81604de-bfd2-4e50-91b7-bdbbf98c82dd
select id, email, password_hash, display_name, created_at, updated_at
from users
where id = $1::uuid;
`

const QSelectUserByEmail = `--sql a8a0efeb-9198-4dcc-9748-087880b72e4e
select id, email, password_hash, display_name, created_at, updated_at
from users
where lower(email) = lower($1::text);
`
