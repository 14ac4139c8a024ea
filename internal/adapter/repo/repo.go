package repo

import "github.com/Gaetan-M/SocialWishlist/internal/domain"

var (
	_ domain.UserRepository         = (*UserRepositoryPG)(nil)
	_ domain.WishlistRepository     = (*WishlistRepositoryPG)(nil)
	_ domain.ItemRepository         = (*ItemRepositoryPG)(nil)
	_ domain.ContributionRepository = (*ContributionRepositoryPG)(nil)

	_ domain.UserRepository         = (*UserRepositoryMem)(nil)
	_ domain.WishlistRepository     = (*WishlistRepositoryMem)(nil)
	_ domain.ItemRepository         = (*ItemRepositoryMem)(nil)
	_ domain.ContributionRepository = (*ContributionRepositoryMem)(nil)
)
