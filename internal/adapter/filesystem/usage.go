package filesystem

import (
	"github.com/vertextoedge/violent-cleanup/internal/domain/vo"
)

func usedPercent(totalBlocks, freeBlocks uint64) (int, error) {
	pct, err := vo.UsedPercentage(totalBlocks, freeBlocks)
	if err != nil {
		return 0, err
	}
	return pct.Value(), nil
}
