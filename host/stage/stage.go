// Package stage binds the viewer to a lacking game scene. A Stage is the
// render surface of a session and mirrors its world into the engine.
package stage

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/gomath/sprec"
	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/game/graphics"

	"github.com/nobonobo/orbit-viewer/host/assets"
	"github.com/nobonobo/orbit-viewer/host/render"
	"github.com/nobonobo/orbit-viewer/host/resources"
	"github.com/nobonobo/orbit-viewer/host/world"
)

// Nodes of the light rig model.
const (
	CameraNodeName   = "Camera"
	KeyLightNodeName = "KeyLight"
)

var (
	ErrNoEngine  = errors.New("no engine")
	ErrNoSurface = errors.New("stage surface not provided")
)

type Option func(*Stage)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Stage) {
		s.logger = logger
	}
}

type Stage struct {
	logger *slog.Logger
	engine *game.Engine

	// scene and camera exist once the stage was provided as a surface.
	scene  *game.Scene
	camera *graphics.Camera

	lights world.LightRig

	// Set once the light rig is spawned.
	cameraPose   poseFunc
	keyLightPose poseFunc

	settings   render.Settings
	pixelRatio float64
	width      int
	height     int

	exposureApplied bool
}

var (
	_ render.Surface  = (*Stage)(nil)
	_ world.Presenter = (*Stage)(nil)
)

// New prepares a stage for the engine. The engine is left untouched until
// the stage is provided as a surface.
func New(engine *game.Engine, opts ...Option) (*Stage, error) {
	if engine == nil {
		return nil, ErrNoEngine
	}
	s := &Stage{
		logger: slog.Default(),
		engine: engine,
		lights: world.DefaultLightRig(),
	}
	for _, apply := range opts {
		apply(s)
	}
	return s, nil
}

func createCamera(scene *graphics.Scene) *graphics.Camera {
	result := scene.CreateCamera()
	// Hor+ keeps the vertical field of view fixed across aspect ratios.
	result.SetFoVMode(graphics.FoVModeHorizontalPlus)
	result.SetFoV(sprec.Degrees(float32(world.CameraFoVDegrees)))
	result.SetNear(float32(world.CameraNear))
	result.SetFar(float32(world.CameraFar))
	result.SetAutoExposure(false)
	result.SetExposure(1.0)
	result.SetAutoFocus(false)
	result.SetAutoExposureSpeed(0.1)
	result.SetCascadeDistances([]float32{float32(world.CameraFar) / 3.0})
	return result
}

// Provide creates the engine scene on first use, makes it the active one and
// returns the stage as the surface for any surface ID.
func (s *Stage) Provide(id string) (render.Surface, error) {
	if s.scene == nil {
		s.scene = s.engine.CreateScene(game.SceneInfo{
			IncludePhysics: opt.V(false),
			IncludeECS:     opt.V(false),
		})
		s.camera = createCamera(s.scene.Graphics())
		s.scene.Graphics().SetActiveCamera(s.camera)

		s.engine.SetActiveScene(s.scene)
		s.engine.ResetDeltaTime()
	}
	s.logger.Debug("Surface acquired", slog.String("surface", id))
	return s, nil
}

// Provided reports whether the stage owns an engine scene.
func (s *Stage) Provided() bool {
	return s.scene != nil
}

func (s *Stage) Configure(settings render.Settings) error {
	if s.camera == nil {
		return ErrNoSurface
	}
	s.settings = settings
	s.camera.SetExposure(float32(settings.ToneMappingExposure))
	s.logger.Debug("Surface configured",
		slog.String("tone_mapping", settings.ToneMapping.String()),
		slog.String("color_space", settings.OutputColorSpace.String()),
	)
	return nil
}

// SetPixelRatio records the ratio. The engine sizes its own framebuffers
// from the window.
func (s *Stage) SetPixelRatio(ratio float64) {
	s.pixelRatio = ratio
}

func (s *Stage) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Stage) Size() (int, int) {
	return s.width, s.height
}

// Draw applies the frame's exposure to the engine camera. The engine draws
// the active scene itself, through the stages of its Pipeline.
func (s *Stage) Draw(frame render.Frame) error {
	if s.camera == nil {
		return ErrNoSurface
	}
	if frame.Camera == nil {
		return fmt.Errorf("frame %d has no camera", frame.Index)
	}
	if !s.exposureApplied {
		if exposure, ok := exposureOf(frame.Effects, s.settings.ToneMappingExposure); ok {
			s.camera.SetAutoExposure(exposure.Auto)
			s.camera.SetAutoExposureSpeed(exposure.Speed)
			s.camera.SetExposure(exposure.Exposure)
		}
		s.exposureApplied = true
	}
	return nil
}

func (s *Stage) PresentCamera(camera *world.Camera) {
	if s.camera == nil {
		return
	}
	s.camera.SetFoV(sprec.Degrees(float32(camera.FoV.Degrees())))
	s.camera.SetNear(float32(camera.Near))
	s.camera.SetFar(float32(camera.Far))
	if s.cameraPose != nil {
		s.cameraPose(camera.Position, camera.Rotation())
	}
}

// PresentLights aims the key light of the spawned rig. Colors and shadow
// casting are authored into the light rig model.
func (s *Stage) PresentLights(rig world.LightRig) {
	s.lights = rig
	s.aimKeyLight()
}

func (s *Stage) aimKeyLight() {
	if s.keyLightPose != nil {
		s.keyLightPose(s.lights.Directional.Position, s.lights.Directional.Rotation())
	}
}

func (s *Stage) Spawn(object world.Object, mesh resources.ResourceData) error {
	if s.scene == nil {
		return ErrNoSurface
	}
	template, ok := mesh.Data.(*game.ModelTemplate)
	if !ok || template == nil {
		return fmt.Errorf("resource %q is %T, not a model template", mesh.Name, mesh.Data)
	}
	model := s.scene.InstantiateModel(game.ModelInfo{
		Template:  template,
		Name:      opt.V(object.Name),
		Position:  opt.V(object.Position),
		IsDynamic: false,
	})

	if object.Mesh == assets.LightRigModel {
		hierarchy := s.scene.Hierarchy()
		if cameraNode := model.FindNode(CameraNodeName); !cameraNode.IsNil() {
			s.scene.CameraBindingSet().Bind(cameraNode, s.camera)
			s.cameraPose = nodePose(hierarchy.Wrap(cameraNode))
		} else {
			s.logger.Warn("Light rig has no camera node", slog.String("node", CameraNodeName))
		}
		if keyLightNode := model.FindNode(KeyLightNodeName); !keyLightNode.IsNil() {
			s.keyLightPose = nodePose(hierarchy.Wrap(keyLightNode))
			s.aimKeyLight()
		}
	}

	s.logger.Debug("Object spawned",
		slog.String("object", object.Name),
		slog.String("mesh", object.Mesh),
	)
	return nil
}

// Dispose detaches the scene from the engine.
func (s *Stage) Dispose() {
	s.cameraPose = nil
	s.keyLightPose = nil
	if s.scene != nil {
		s.engine.SetActiveScene(nil)
	}
}

type poseFunc func(position dprec.Vec3, rotation dprec.Quat)

// poseNode is the part of a scene node the stage moves.
type poseNode interface {
	SetPosition(position dprec.Vec3)
	SetRotation(rotation dprec.Quat)
}

func nodePose(node poseNode) poseFunc {
	return func(position dprec.Vec3, rotation dprec.Quat) {
		node.SetPosition(position)
		node.SetRotation(rotation)
	}
}
