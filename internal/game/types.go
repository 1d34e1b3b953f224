package game

// Role 玩家角色
type Role string

const (
	RoleUnassigned Role = "unassigned"
	RoleCrewmate   Role = "crewmate"
	RoleImposter   Role = "imposter"
)

// Player 大厅中的一名玩家
// 由 Session 独占持有，以连接 ID 为键
type Player struct {
	ID   string
	Name string
	Role Role
}
