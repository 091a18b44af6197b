package flappy

// moveObstacles scrolls every pipe left by speed and drops the ones that
// are completely past the left edge. It walks back to front so removing an
// element never skips its neighbour; the survivors keep spawn order.
func moveObstacles(obs []Obstacle, speed float64) []Obstacle {
	for i := len(obs) - 1; i >= 0; i-- {
		obs[i].X -= speed
		if obs[i].X+obs[i].Width < 0 {
			obs = append(obs[:i], obs[i+1:]...)
		}
	}
	return obs
}
