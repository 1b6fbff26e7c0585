// Package dungeon is the core generation facade: DungeonConfig loading
// and validation, and Generate/GenerateProgress, which derive a seed,
// dispatch to the configured strategy (pkg/cellular or pkg/bsp), and
// return the finished artifact.Dungeon.
package dungeon
