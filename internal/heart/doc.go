// Package heart samples a particle cloud from the interior of an implicit
// heart-shaped volume.
//
// The volume is the set of points satisfying
//
//	(x² + 9/4·y² + z² − 1)³ − x²·z³ − 9/80·y²·z³ ≤ 0
//
// Points are drawn by rejection sampling from a cube centered at the origin
// and colored by their radial distance from the center:
//
//   - [Inside]: the membership test for the volume
//   - [Sample]: draws an exact number of interior points
//   - [PointCloud]: the fixed-size result, recolored at most by [PointCloud.Recolor]
//
// # Example
//
//	cfg := heart.DefaultSamplerConfig()
//	res, err := heart.Sample(cfg, rand.New(rand.NewSource(42)))
//	if err != nil {
//		return err
//	}
//	cloud := res.Cloud
package heart
