package citymap

// Relationship describes how a guild relates to the district being viewed.
type Relationship string

const (
	RelationshipHeadquartered Relationship = "headquartered"
	RelationshipCitywide      Relationship = "citywide"
)

// Guild is a read-only guild preview attached to a district.
type Guild struct {
	ID           int
	Name         string
	Description  string
	Relationship Relationship
}

// DistrictDetail is a district together with its affiliated guilds.
type DistrictDetail struct {
	District
	Guilds []Guild
}
