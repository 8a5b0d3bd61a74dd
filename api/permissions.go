package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
)

type Resource string

const (
	ResourceAirports      Resource = "airports"
	ResourceRoutes        Resource = "routes"
	ResourceCrews         Resource = "crews"
	ResourceAirplaneTypes Resource = "airplane-types"
	ResourceAirplanes     Resource = "airplanes"
	ResourceFlights       Resource = "flights"
	ResourceOrders        Resource = "orders"
	ResourceUsers         Resource = "users"
)

type Operation string

const (
	OpList          Operation = "list"
	OpRetrieve      Operation = "retrieve"
	OpCreate        Operation = "create"
	OpUpdate        Operation = "update"
	OpPartialUpdate Operation = "partial_update"
	OpDelete        Operation = "delete"
	OpAvailability  Operation = "availability"
	OpRegister      Operation = "register"
	OpToken         Operation = "token"
	OpTokenRefresh  Operation = "token_refresh"
	OpMe            Operation = "me"
)

type Privilege int

const (
	PrivilegePublic Privilege = iota
	PrivilegeAuthenticated
	PrivilegeAdmin
)

func (p Privilege) String() string {
	switch p {
	case PrivilegePublic:
		return "public"
	case PrivilegeAuthenticated:
		return "authenticated"
	case PrivilegeAdmin:
		return "admin"
	}
	return "unknown"
}

// Check reports whether identity holds privilege p.
func (p Privilege) Check(identity domain.Identity) error {
	switch p {
	case PrivilegePublic:
		return nil
	case PrivilegeAuthenticated:
		if !identity.Authenticated() {
			return domain.ErrUnauthorized
		}
		return nil
	default:
		if !identity.Authenticated() {
			return domain.ErrUnauthorized
		}
		if !identity.IsStaff {
			return domain.ErrForbidden
		}
		return nil
	}
}

// Capabilities is the resource → operation → privilege table. An operation
// missing from the table is not routed at all.
type Capabilities map[Resource]map[Operation]Privilege

func referenceData(ops ...Operation) map[Operation]Privilege {
	table := make(map[Operation]Privilege, len(ops))
	for _, op := range ops {
		switch op {
		case OpList, OpRetrieve, OpAvailability:
			table[op] = PrivilegePublic
		default:
			table[op] = PrivilegeAdmin
		}
	}
	return table
}

// DefaultCapabilities: reference data is readable by anyone and writable by
// admins, orders belong to authenticated users.
func DefaultCapabilities() Capabilities {
	crud := []Operation{OpList, OpRetrieve, OpCreate, OpUpdate, OpPartialUpdate, OpDelete}
	return Capabilities{
		ResourceAirports:      referenceData(OpList, OpCreate),
		ResourceRoutes:        referenceData(OpList, OpRetrieve, OpCreate),
		ResourceCrews:         referenceData(crud...),
		ResourceAirplaneTypes: referenceData(crud...),
		ResourceAirplanes:     referenceData(OpList, OpRetrieve, OpCreate),
		ResourceFlights:       referenceData(append(crud, OpAvailability)...),
		ResourceOrders: {
			OpList:   PrivilegeAuthenticated,
			OpCreate: PrivilegeAuthenticated,
		},
		ResourceUsers: {
			OpRegister:     PrivilegePublic,
			OpToken:        PrivilegePublic,
			OpTokenRefresh: PrivilegePublic,
			OpMe:           PrivilegeAuthenticated,
		},
	}
}

func (c Capabilities) Lookup(resource Resource, op Operation) (Privilege, bool) {
	ops, ok := c[resource]
	if !ok {
		return 0, false
	}
	p, ok := ops[op]
	return p, ok
}

// Access registers handlers guarded by the capability table.
type Access struct {
	caps Capabilities
}

func NewAccess(caps Capabilities) *Access {
	return &Access{caps: caps}
}

// Handle registers h under method and path only if the table allows
// resource/op, prefixed by a privilege check.
func (a *Access) Handle(router gin.IRoutes, method, path string, resource Resource, op Operation, handlers ...gin.HandlerFunc) {
	privilege, ok := a.caps.Lookup(resource, op)
	if !ok {
		return
	}
	chain := append([]gin.HandlerFunc{requirePrivilege(privilege)}, handlers...)
	router.Handle(method, path, chain...)
}

func requirePrivilege(p Privilege) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := p.Check(identityFrom(c)); err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detailUnauthenticated})
				return
			}
			writeError(c, err)
			return
		}
		c.Next()
	}
}
