package sqlinline

const QInsertContribution = `--sql a65a2b7c-185a-46d8-a591-539ad9684829
insert into contributions(id, item_id, user_id, amount, created_at, updated_at)
values ($1::uuid, $2::uuid, $3::uuid, $4::bigint, $5::timestamptz, $6::timestamptz);
`

const QSelectContributionByItemAndUser = `--sql 33d53b9b-a2a6-45bc-b582-8b2fff1dbf6c
select id, item_id, user_id, amount, created_at, updated_at
from contributions
where item_id = $1::uuid and user_id = $2::uuid;
`

const QAggregateContributionsByItem = `--sql 9b11a3f1-96f6-4131-b2d2-b408febc21c8
select coalesce(sum(amount), 0)::bigint, count(id)::int
from contributions
where item_id = $1::uuid and amount > 0;
`

const QUpdateContributionAmount = `--sql 063f09c7-a747-4fb0-92bd-73405c411302
update contributions
set amount = $2::bigint, updated_at = $3::timestamptz
where id = $1::uuid
returning id, item_id, user_id, amount, created_at, updated_at;
`
