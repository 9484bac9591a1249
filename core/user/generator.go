package user

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/eskwela/admin/core"
)

// Demo vocabulary cycled through by the generator.
var names = []string{
	"Maria Santos", "Juan Dela Cruz", "Ana Garcia", "Pedro Rodriguez", "Sofia Martinez",
	"Carlos Lopez", "Isabella Gonzalez", "Miguel Torres", "Lucia Hernandez", "Diego Morales",
}

// Generate produces exactly n schema-valid demo users with 1-based
// sequential ids. Output is a pure function of rng: the same seed yields
// the same pool.
func Generate(rng *rand.Rand, n int) []User {
	now := core.PoolEpoch
	users := make([]User, 0, n)
	for i := 0; i < n; i++ {
		role := AllRoles[rng.Intn(len(AllRoles))]
		usr := User{
			ID:         i + 1,
			Name:       names[i%len(names)],
			Email:      fmt.Sprintf("user%d@eskwela.edu.ph", i+1),
			Role:       role,
			LastActive: now.Add(-time.Duration(rng.Int63n(int64(7 * 24 * time.Hour)))),
			CreatedAt:  now.Add(-time.Duration(rng.Int63n(int64(30 * 24 * time.Hour)))),
			Status:     core.StatusActive,
		}
		if role == RoleStudent {
			usr.GradeLevel = core.GradeLevels[rng.Intn(len(core.GradeLevels))]
		}
		// 90% active users
		if rng.Float64() <= 0.1 {
			usr.Status = core.StatusInactive
		}
		users = append(users, usr)
	}
	return users
}
