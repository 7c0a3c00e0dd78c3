package main

/*
#include "fj_types.h"
*/
import "C"

import (
	"unsafe"

	"libfj/internal/core/foreign"
)

// Every C typedef must match its Go mirror byte for byte. Indexing a one
// element array is only legal when the difference is zero, so drift in a size
// or a field offset fails the build

var (
	cList   C.FactoryRobotListInfo
	gList   foreign.ListRecord
	cDetail C.FactoryRobotGetInfo
	gDetail foreign.DetailRecord
	cCube   C.CubeData
	gCube   foreign.Cube
	cQuery  C.FactorySearchQuery
	gQuery  foreign.QuerySpec
)

// FactoryRobotListInfo
var (
	_ = [1]struct{}{}[unsafe.Sizeof(cList)-unsafe.Sizeof(gList)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.item_id)-unsafe.Offsetof(gList.ItemID)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.item_name)-unsafe.Offsetof(gList.ItemName)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.item_description)-unsafe.Offsetof(gList.ItemDescription)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.thumbnail)-unsafe.Offsetof(gList.Thumbnail)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.added_by)-unsafe.Offsetof(gList.AddedBy)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.added_by_display_name)-unsafe.Offsetof(gList.AddedByDisplayName)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.added_date)-unsafe.Offsetof(gList.AddedDate)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.expiry_date)-unsafe.Offsetof(gList.ExpiryDate)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.cpu)-unsafe.Offsetof(gList.CPU)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.total_robot_ranking)-unsafe.Offsetof(gList.TotalRobotRanking)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.rent_count)-unsafe.Offsetof(gList.RentCount)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.buy_count)-unsafe.Offsetof(gList.BuyCount)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.buyable)-unsafe.Offsetof(gList.Buyable)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.removed_date)-unsafe.Offsetof(gList.RemovedDate)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.ban_date)-unsafe.Offsetof(gList.BanDate)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.featured)-unsafe.Offsetof(gList.Featured)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.banner_message)-unsafe.Offsetof(gList.BannerMessage)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.combat_rating)-unsafe.Offsetof(gList.CombatRating)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.cosmetic_rating)-unsafe.Offsetof(gList.CosmeticRating)]
	_ = [1]struct{}{}[unsafe.Offsetof(cList.cube_amounts)-unsafe.Offsetof(gList.CubeAmounts)]
)

// FactoryRobotGetInfo
var (
	_ = [1]struct{}{}[unsafe.Sizeof(cDetail)-unsafe.Sizeof(gDetail)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.item_id)-unsafe.Offsetof(gDetail.ItemID)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.item_name)-unsafe.Offsetof(gDetail.ItemName)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.item_description)-unsafe.Offsetof(gDetail.ItemDescription)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.thumbnail)-unsafe.Offsetof(gDetail.Thumbnail)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.added_by)-unsafe.Offsetof(gDetail.AddedBy)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.added_by_display_name)-unsafe.Offsetof(gDetail.AddedByDisplayName)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.added_date)-unsafe.Offsetof(gDetail.AddedDate)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.expiry_date)-unsafe.Offsetof(gDetail.ExpiryDate)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.cpu)-unsafe.Offsetof(gDetail.CPU)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.total_robot_ranking)-unsafe.Offsetof(gDetail.TotalRobotRanking)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.rent_count)-unsafe.Offsetof(gDetail.RentCount)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.buy_count)-unsafe.Offsetof(gDetail.BuyCount)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.buyable)-unsafe.Offsetof(gDetail.Buyable)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.removed_date)-unsafe.Offsetof(gDetail.RemovedDate)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.ban_date)-unsafe.Offsetof(gDetail.BanDate)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.featured)-unsafe.Offsetof(gDetail.Featured)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.banner_message)-unsafe.Offsetof(gDetail.BannerMessage)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.combat_rating)-unsafe.Offsetof(gDetail.CombatRating)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.cosmetic_rating)-unsafe.Offsetof(gDetail.CosmeticRating)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.cube_data)-unsafe.Offsetof(gDetail.CubeData)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.colour_data)-unsafe.Offsetof(gDetail.ColourData)]
	_ = [1]struct{}{}[unsafe.Offsetof(cDetail.cube_amounts)-unsafe.Offsetof(gDetail.CubeAmounts)]
)

// CubeData
var (
	_ = [1]struct{}{}[unsafe.Sizeof(cCube)-unsafe.Sizeof(gCube)]
	_ = [1]struct{}{}[unsafe.Offsetof(cCube.id)-unsafe.Offsetof(gCube.ID)]
	_ = [1]struct{}{}[unsafe.Offsetof(cCube.x)-unsafe.Offsetof(gCube.X)]
	_ = [1]struct{}{}[unsafe.Offsetof(cCube.y)-unsafe.Offsetof(gCube.Y)]
	_ = [1]struct{}{}[unsafe.Offsetof(cCube.z)-unsafe.Offsetof(gCube.Z)]
	_ = [1]struct{}{}[unsafe.Offsetof(cCube.orientation)-unsafe.Offsetof(gCube.Orientation)]
	_ = [1]struct{}{}[unsafe.Offsetof(cCube.colour)-unsafe.Offsetof(gCube.Colour)]
)

// FactorySearchQuery
var (
	_ = [1]struct{}{}[unsafe.Sizeof(cQuery)-unsafe.Sizeof(gQuery)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.page)-unsafe.Offsetof(gQuery.Page)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.items_per_page)-unsafe.Offsetof(gQuery.ItemsPerPage)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.order)-unsafe.Offsetof(gQuery.Order)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.movement_filter)-unsafe.Offsetof(gQuery.MovementFilter)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.weapon_filter)-unsafe.Offsetof(gQuery.WeaponFilter)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.minimum_cpu)-unsafe.Offsetof(gQuery.MinimumCPU)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.maximum_cpu)-unsafe.Offsetof(gQuery.MaximumCPU)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.text_filter)-unsafe.Offsetof(gQuery.TextFilter)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.text_search_field)-unsafe.Offsetof(gQuery.TextSearchField)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.buyable)-unsafe.Offsetof(gQuery.Buyable)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.prepend_featured)-unsafe.Offsetof(gQuery.PrependFeatured)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.featured_only)-unsafe.Offsetof(gQuery.FeaturedOnly)]
	_ = [1]struct{}{}[unsafe.Offsetof(cQuery.default_page)-unsafe.Offsetof(gQuery.DefaultPage)]
)
