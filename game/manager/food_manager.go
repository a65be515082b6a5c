package manager

import (
	"github.com/spidervirus/Snake-Game/game/types"
)

// FoodPoints is the base score for one piece of food.
const FoodPoints = 1

// FoodManager keeps the single piece of food on the grid.
type FoodManager struct {
	placer   *types.Placer
	position types.Point
}

func NewFoodManager(placer *types.Placer) *FoodManager {
	return &FoodManager{
		placer: placer,
	}
}

// Relocate moves the food to a random cell outside excluded.
func (fm *FoodManager) Relocate(excluded types.PointSet) types.Point {
	fm.position = fm.placer.RandomCellExcluding(excluded)
	return fm.position
}

// Place puts the food on a known cell.
func (fm *FoodManager) Place(p types.Point) {
	fm.position = p
}

func (fm *FoodManager) Position() types.Point {
	return fm.position
}
