package flags

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store is a key/value store for boolean feature and progress flags.
type Store interface {
	// Set stores value under key. A zero ttl means the flag never expires.
	Set(ctx context.Context, key string, value bool, ttl time.Duration) error
	// Get reports the stored value; a missing key reads as false.
	Get(ctx context.Context, key string) (bool, error)
}

const dietPlanFormPrefix = "diet-plan-form-"

// DietPlanFormKey is the flag recording that userID has submitted the diet plan form.
func DietPlanFormKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", dietPlanFormPrefix, userID.String())
}
