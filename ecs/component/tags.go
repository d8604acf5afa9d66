package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// AssistantTag marks the friendly NPC that delivers dialogue.
type AssistantTag struct{}

var AssistantTagComponent = NewComponent[AssistantTag]()

// DeathZone kills any actor whose collider enters its trigger.
type DeathZone struct{}

var DeathZoneComponent = NewComponent[DeathZone]()
