package service

import (
	"fmt"
	"strings"

	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/repository"
)

// DataInfoRequest names a server method by class and method pair, the way the
// shared UI controls call the backend: an employee input posts
// {Controls, GetEmployeeList}, a select input posts {Main, GetAdmin} or
// {Main, GetEquipmentList}, with loose params alongside.
type DataInfoRequest struct {
	ClassName  string         `json:"className"`
	MethodName string         `json:"methodName"`
	Params     map[string]any `json:"params"`
	Category   string         `json:"category"`
}

type dataInfoKey struct {
	class  string
	method string
}

type dataInfoHandler func(params map[string]any) (*repository.DataTable, error)

// DataInfoService dispatches datainfo calls to a closed set of lookup
// queries. The dispatch table is fixed at construction; an unknown pair is a
// client error, never a reflection lookup.
type DataInfoService struct {
	agent    repository.DataAgentInterface
	handlers map[dataInfoKey]dataInfoHandler
}

// NewDataInfoService creates a new datainfo service
func NewDataInfoService(agent repository.DataAgentInterface) *DataInfoService {
	s := &DataInfoService{agent: agent}
	s.handlers = map[dataInfoKey]dataInfoHandler{
		{"CONTROLS", "GETEMPLOYEELIST"}: s.getEmployeeList,
		{"MAIN", "GETADMIN"}:            s.getAdminList,
		{"MAIN", "GETEQUIPMENTLIST"}:    s.getEquipmentList,
	}
	return s
}

// Ensure DataInfoService implements DataInfoServiceInterface
var _ DataInfoServiceInterface = (*DataInfoService)(nil)

// Execute routes the request to its handler
func (s *DataInfoService) Execute(req *DataInfoRequest) (*repository.DataTable, error) {
	key := dataInfoKey{
		class:  strings.ToUpper(strings.TrimSpace(req.ClassName)),
		method: strings.ToUpper(strings.TrimSpace(req.MethodName)),
	}
	handler, ok := s.handlers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", apperrors.ErrUnknownDataInfoMethod, req.ClassName, req.MethodName)
	}
	return handler(req.Params)
}

// getEmployeeList backs the employee input control. An optional userNames
// param narrows by Korean name.
func (s *DataInfoService) getEmployeeList(params map[string]any) (*repository.DataTable, error) {
	query := `SELECT E.emp_no  AS EMP_NO,
       E.h_name  AS USER_NAME,
       E.user_id AS SINGLE_ID
  FROM "MST_EMPLOYEE" E`

	var args []interface{}
	if name := firstString(params["userNames"]); name != "" {
		query += "\n WHERE E.h_name LIKE ?"
		args = append(args, "%"+name+"%")
	}
	query += "\n ORDER BY E.h_name"

	return s.agent.Fill(query, args...)
}

// getAdminList backs select inputs with an admin data source, in the
// INPUT_KEY / INPUT_NAME shape those controls require.
func (s *DataInfoService) getAdminList(_ map[string]any) (*repository.DataTable, error) {
	query := `SELECT E.emp_no AS INPUT_KEY,
       E.h_name AS INPUT_NAME
  FROM "MST_EMPLOYEE" E
 ORDER BY E.h_name`

	return s.agent.Fill(query)
}

// getEquipmentList backs select inputs with an equipment data source,
// optionally scoped to one line.
func (s *DataInfoService) getEquipmentList(params map[string]any) (*repository.DataTable, error) {
	query := `SELECT E.eqp_id AS INPUT_KEY,
       E.eqp_id || ' (' || E.eqp_group_name || ')' AS INPUT_NAME
  FROM "DDB_EQUIPMENT_MST" E`

	var args []interface{}
	if lineID := firstString(params["lineId"]); lineID != "" {
		query += "\n WHERE E.line_id = ?"
		args = append(args, lineID)
	}
	query += "\n ORDER BY E.eqp_id"

	return s.agent.Fill(query, args...)
}

// firstString pulls a usable string out of a loosely typed param: the value
// itself, or the first element when the client sent an array.
func firstString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []any:
		if len(v) == 0 {
			return ""
		}
		return firstString(v[0])
	case []string:
		if len(v) == 0 {
			return ""
		}
		return strings.TrimSpace(v[0])
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
