package conf

// LoadFactorThreshold - Highest permitted ratio of entries to buckets after an insert. An insert that
// would push the ratio above it triggers a rehash first.
const LoadFactorThreshold float64 = 0.75

// InitialCapacity - Number of buckets in a newly created table unless configured otherwise
const InitialCapacity int64 = 64

// MaximumCapacity - Largest number of buckets a table may grow to, it keeps bucket and arena indexes
// within int32 range
const MaximumCapacity int64 = 1 << 30

// GrowthFactor - Multiplier applied to the capacity on each rehash
const GrowthFactor int64 = 2

// NoEntry - Arena index used as the empty bucket head and as the end of chain marker
const NoEntry int32 = -1

// DefaultTableName - Name used as metrics label for tables created without a name
const DefaultTableName string = "default"
