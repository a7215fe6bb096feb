package lookup

// NeutralStyle is the badge style used for unknown statuses and priorities.
const NeutralStyle = "bg-gray-100 text-gray-800"

// StatusTable maps workflow statuses to badge styles.
var StatusTable = Table{
	"active":      {Style: "bg-green-100 text-green-800", Label: "Actif", Key: "status.active"},
	"inactive":    {Style: "bg-gray-100 text-gray-800", Label: "Inactif", Key: "status.inactive"},
	"pending":     {Style: "bg-yellow-100 text-yellow-800", Label: "En attente", Key: "status.pending"},
	"completed":   {Style: "bg-green-100 text-green-800", Label: "Terminé", Key: "status.completed"},
	"done":        {Style: "bg-green-100 text-green-800", Label: "Terminé", Key: "status.done"},
	"in_progress": {Style: "bg-blue-100 text-blue-800", Label: "En cours", Key: "status.in_progress"},
	"todo":        {Style: "bg-gray-100 text-gray-800", Label: "À faire", Key: "status.todo"},
	"cancelled":   {Style: "bg-red-100 text-red-800", Label: "Annulé", Key: "status.cancelled"},
	"archived":    {Style: "bg-gray-100 text-gray-800", Label: "Archivé", Key: "status.archived"},
}

// PriorityTable maps task priorities to badge styles.
var PriorityTable = Table{
	"low":    {Style: "bg-gray-100 text-gray-800", Label: "Basse", Key: "priority.low"},
	"medium": {Style: "bg-blue-100 text-blue-800", Label: "Moyenne", Key: "priority.medium"},
	"high":   {Style: "bg-orange-100 text-orange-800", Label: "Haute", Key: "priority.high"},
	"urgent": {Style: "bg-red-100 text-red-800", Label: "Urgente", Key: "priority.urgent"},
}

// ProjectStatusTable maps project card statuses to ring badge styles. Unknown
// statuses use the pending style.
var ProjectStatusTable = Table{
	"active":    {Style: "bg-emerald-50 text-emerald-700 ring-1 ring-emerald-500/20", Label: "Active"},
	"pending":   {Style: "bg-amber-50 text-amber-700 ring-1 ring-amber-500/20", Label: "Pending"},
	"completed": {Style: "bg-blue-50 text-blue-700 ring-1 ring-blue-500/20", Label: "Completed"},
	"archived":  {Style: "bg-gray-50 text-gray-600 ring-1 ring-gray-500/20", Label: "Archived"},
}
