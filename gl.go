package gli

// GLFormat is an OpenGL internal format, external format and type triple.
// Compressed formats have only an internal format.
type GLFormat struct {
	Internal uint32
	External uint32
	Type     uint32
}

// OpenGL enums used by the translation table.
const (
	glByte                     = 0x1400
	glUnsignedByte             = 0x1401
	glShort                    = 0x1402
	glUnsignedShort            = 0x1403
	glInt                      = 0x1404
	glUnsignedInt              = 0x1405
	glFloat                    = 0x1406
	glHalfFloat                = 0x140B
	glUnsignedByte332          = 0x8032
	glUnsignedShort4444        = 0x8033
	glUnsignedShort5551        = 0x8034
	glUnsignedShort565         = 0x8363
	glUnsignedShort1555Rev     = 0x8366
	glUnsignedInt8888Rev       = 0x8367
	glUnsignedInt2101010Rev    = 0x8368
	glUnsignedInt248           = 0x84FA
	glUnsignedInt10F11F11FRev  = 0x8C3B
	glUnsignedInt5999Rev       = 0x8C3E
	glFloat32UnsignedInt248Rev = 0x8DAD

	glStencilIndex   = 0x1901
	glDepthComponent = 0x1902
	glRed            = 0x1903
	glAlpha          = 0x1906
	glRGB            = 0x1907
	glRGBA           = 0x1908
	glLuminance      = 0x1909
	glLuminanceAlpha = 0x190A
	glBGR            = 0x80E0
	glBGRA           = 0x80E1
	glDepthStencil   = 0x84F9
	glRG             = 0x8227
	glRGInteger      = 0x8228
	glRedInteger     = 0x8D94
	glRGBInteger     = 0x8D98
	glRGBAInteger    = 0x8D99
	glBGRInteger     = 0x8D9A
	glBGRAInteger    = 0x8D9B

	glR3G3B2             = 0x2A10
	glAlpha8             = 0x803C
	glAlpha16            = 0x803E
	glLuminance8         = 0x8040
	glLuminance16        = 0x8042
	glLuminance8Alpha8   = 0x8045
	glLuminance16Alpha16 = 0x8048
	glRGB8               = 0x8051
	glRGB16              = 0x8054
	glRGBA4              = 0x8056
	glRGB5A1             = 0x8057
	glRGBA8              = 0x8058
	glRGB10A2            = 0x8059
	glRGBA16             = 0x805B
	glDepthComponent16   = 0x81A5
	glDepthComponent24   = 0x81A6
	glR8                 = 0x8229
	glR16                = 0x822A
	glRG8                = 0x822B
	glRG16               = 0x822C
	glR16F               = 0x822D
	glR32F               = 0x822E
	glRG16F              = 0x822F
	glRG32F              = 0x8230
	glR8I                = 0x8231
	glR8UI               = 0x8232
	glR16I               = 0x8233
	glR16UI              = 0x8234
	glR32I               = 0x8235
	glR32UI              = 0x8236
	glRG8I               = 0x8237
	glRG8UI              = 0x8238
	glRG16I              = 0x8239
	glRG16UI             = 0x823A
	glRG32I              = 0x823B
	glRG32UI             = 0x823C
	glRGBA32F            = 0x8814
	glRGB32F             = 0x8815
	glRGBA16F            = 0x881A
	glRGB16F             = 0x881B
	glDepth24Stencil8    = 0x88F0
	glR11FG11FB10F       = 0x8C3A
	glRGB9E5             = 0x8C3D
	glSRGB8              = 0x8C41
	glSRGB8Alpha8        = 0x8C43
	glDepthComponent32F  = 0x8CAC
	glDepth32FStencil8   = 0x8CAD
	glStencilIndex8      = 0x8D48
	glRGB565             = 0x8D62
	glRGBA32UI           = 0x8D70
	glRGB32UI            = 0x8D71
	glRGBA16UI           = 0x8D76
	glRGB16UI            = 0x8D77
	glRGBA8UI            = 0x8D7C
	glRGB8UI             = 0x8D7D
	glRGBA32I            = 0x8D82
	glRGB32I             = 0x8D83
	glRGBA16I            = 0x8D88
	glRGB16I             = 0x8D89
	glRGBA8I             = 0x8D8E
	glRGB8I              = 0x8D8F
	glR8Snorm            = 0x8F94
	glRG8Snorm           = 0x8F95
	glRGB8Snorm          = 0x8F96
	glRGBA8Snorm         = 0x8F97
	glR16Snorm           = 0x8F98
	glRG16Snorm          = 0x8F99
	glRGB16Snorm         = 0x8F9A
	glRGBA16Snorm        = 0x8F9B
	glSR8                = 0x8FBD
	glSRG8               = 0x8FBE
	glRGB10A2UI          = 0x906F
)

var glTable = map[Format]GLFormat{
	FormatRGBA4UnormPack16:            {glRGBA4, glRGBA, glUnsignedShort4444},
	FormatBGRA4UnormPack16:            {glRGBA4, glBGRA, glUnsignedShort4444},
	FormatR5G6B5UnormPack16:           {glRGB565, glRGB, glUnsignedShort565},
	FormatB5G6R5UnormPack16:           {glRGB565, glBGR, glUnsignedShort565},
	FormatRGB5A1UnormPack16:           {glRGB5A1, glRGBA, glUnsignedShort5551},
	FormatBGR5A1UnormPack16:           {glRGB5A1, glBGRA, glUnsignedShort5551},
	FormatA1RGB5UnormPack16:           {glRGB5A1, glBGRA, glUnsignedShort1555Rev},
	FormatR8UnormPack8:                {glR8, glRed, glUnsignedByte},
	FormatR8SnormPack8:                {glR8Snorm, glRed, glByte},
	FormatR8UintPack8:                 {glR8UI, glRedInteger, glUnsignedByte},
	FormatR8SintPack8:                 {glR8I, glRedInteger, glByte},
	FormatR8SrgbPack8:                 {glSR8, glRed, glUnsignedByte},
	FormatRG8UnormPack8:               {glRG8, glRG, glUnsignedByte},
	FormatRG8SnormPack8:               {glRG8Snorm, glRG, glByte},
	FormatRG8UintPack8:                {glRG8UI, glRGInteger, glUnsignedByte},
	FormatRG8SintPack8:                {glRG8I, glRGInteger, glByte},
	FormatRG8SrgbPack8:                {glSRG8, glRG, glUnsignedByte},
	FormatRGB8UnormPack8:              {glRGB8, glRGB, glUnsignedByte},
	FormatRGB8SnormPack8:              {glRGB8Snorm, glRGB, glByte},
	FormatRGB8UintPack8:               {glRGB8UI, glRGBInteger, glUnsignedByte},
	FormatRGB8SintPack8:               {glRGB8I, glRGBInteger, glByte},
	FormatRGB8SrgbPack8:               {glSRGB8, glRGB, glUnsignedByte},
	FormatBGR8UnormPack8:              {glRGB8, glBGR, glUnsignedByte},
	FormatBGR8SnormPack8:              {glRGB8Snorm, glBGR, glByte},
	FormatBGR8UintPack8:               {glRGB8UI, glBGRInteger, glUnsignedByte},
	FormatBGR8SintPack8:               {glRGB8I, glBGRInteger, glByte},
	FormatBGR8SrgbPack8:               {glSRGB8, glBGR, glUnsignedByte},
	FormatRGBA8UnormPack8:             {glRGBA8, glRGBA, glUnsignedByte},
	FormatRGBA8SnormPack8:             {glRGBA8Snorm, glRGBA, glByte},
	FormatRGBA8UintPack8:              {glRGBA8UI, glRGBAInteger, glUnsignedByte},
	FormatRGBA8SintPack8:              {glRGBA8I, glRGBAInteger, glByte},
	FormatRGBA8SrgbPack8:              {glSRGB8Alpha8, glRGBA, glUnsignedByte},
	FormatBGRA8UnormPack8:             {glRGBA8, glBGRA, glUnsignedByte},
	FormatBGRA8SnormPack8:             {glRGBA8Snorm, glBGRA, glByte},
	FormatBGRA8UintPack8:              {glRGBA8UI, glBGRAInteger, glUnsignedByte},
	FormatBGRA8SintPack8:              {glRGBA8I, glBGRAInteger, glByte},
	FormatBGRA8SrgbPack8:              {glSRGB8Alpha8, glBGRA, glUnsignedByte},
	FormatRGBA8UnormPack32:            {glRGBA8, glRGBA, glUnsignedInt8888Rev},
	FormatRGBA8SnormPack32:            {glRGBA8Snorm, glRGBA, glUnsignedInt8888Rev},
	FormatRGBA8UintPack32:             {glRGBA8UI, glRGBAInteger, glUnsignedInt8888Rev},
	FormatRGBA8SintPack32:             {glRGBA8I, glRGBAInteger, glUnsignedInt8888Rev},
	FormatRGBA8SrgbPack32:             {glSRGB8Alpha8, glRGBA, glUnsignedInt8888Rev},
	FormatRGB10A2UnormPack32:          {glRGB10A2, glBGRA, glUnsignedInt2101010Rev},
	FormatRGB10A2UintPack32:           {glRGB10A2UI, glBGRAInteger, glUnsignedInt2101010Rev},
	FormatBGR10A2UnormPack32:          {glRGB10A2, glRGBA, glUnsignedInt2101010Rev},
	FormatBGR10A2UintPack32:           {glRGB10A2UI, glRGBAInteger, glUnsignedInt2101010Rev},
	FormatR16UnormPack16:              {glR16, glRed, glUnsignedShort},
	FormatR16SnormPack16:              {glR16Snorm, glRed, glShort},
	FormatR16UintPack16:               {glR16UI, glRedInteger, glUnsignedShort},
	FormatR16SintPack16:               {glR16I, glRedInteger, glShort},
	FormatR16SfloatPack16:             {glR16F, glRed, glHalfFloat},
	FormatRG16UnormPack16:             {glRG16, glRG, glUnsignedShort},
	FormatRG16SnormPack16:             {glRG16Snorm, glRG, glShort},
	FormatRG16UintPack16:              {glRG16UI, glRGInteger, glUnsignedShort},
	FormatRG16SintPack16:              {glRG16I, glRGInteger, glShort},
	FormatRG16SfloatPack16:            {glRG16F, glRG, glHalfFloat},
	FormatRGB16UnormPack16:            {glRGB16, glRGB, glUnsignedShort},
	FormatRGB16SnormPack16:            {glRGB16Snorm, glRGB, glShort},
	FormatRGB16UintPack16:             {glRGB16UI, glRGBInteger, glUnsignedShort},
	FormatRGB16SintPack16:             {glRGB16I, glRGBInteger, glShort},
	FormatRGB16SfloatPack16:           {glRGB16F, glRGB, glHalfFloat},
	FormatRGBA16UnormPack16:           {glRGBA16, glRGBA, glUnsignedShort},
	FormatRGBA16SnormPack16:           {glRGBA16Snorm, glRGBA, glShort},
	FormatRGBA16UintPack16:            {glRGBA16UI, glRGBAInteger, glUnsignedShort},
	FormatRGBA16SintPack16:            {glRGBA16I, glRGBAInteger, glShort},
	FormatRGBA16SfloatPack16:          {glRGBA16F, glRGBA, glHalfFloat},
	FormatR32UintPack32:               {glR32UI, glRedInteger, glUnsignedInt},
	FormatR32SintPack32:               {glR32I, glRedInteger, glInt},
	FormatR32SfloatPack32:             {glR32F, glRed, glFloat},
	FormatRG32UintPack32:              {glRG32UI, glRGInteger, glUnsignedInt},
	FormatRG32SintPack32:              {glRG32I, glRGInteger, glInt},
	FormatRG32SfloatPack32:            {glRG32F, glRG, glFloat},
	FormatRGB32UintPack32:             {glRGB32UI, glRGBInteger, glUnsignedInt},
	FormatRGB32SintPack32:             {glRGB32I, glRGBInteger, glInt},
	FormatRGB32SfloatPack32:           {glRGB32F, glRGB, glFloat},
	FormatRGBA32UintPack32:            {glRGBA32UI, glRGBAInteger, glUnsignedInt},
	FormatRGBA32SintPack32:            {glRGBA32I, glRGBAInteger, glInt},
	FormatRGBA32SfloatPack32:          {glRGBA32F, glRGBA, glFloat},
	FormatRG11B10UfloatPack32:         {glR11FG11FB10F, glRGB, glUnsignedInt10F11F11FRev},
	FormatRGB9E5UfloatPack32:          {glRGB9E5, glRGB, glUnsignedInt5999Rev},
	FormatD16UnormPack16:              {glDepthComponent16, glDepthComponent, glUnsignedShort},
	FormatD24UnormPack32:              {glDepthComponent24, glDepthComponent, glUnsignedInt},
	FormatD32SfloatPack32:             {glDepthComponent32F, glDepthComponent, glFloat},
	FormatS8UintPack8:                 {glStencilIndex8, glStencilIndex, glUnsignedByte},
	FormatD24UnormS8UintPack32:        {glDepth24Stencil8, glDepthStencil, glUnsignedInt248},
	FormatD32SfloatS8UintPack64:       {glDepth32FStencil8, glDepthStencil, glFloat32UnsignedInt248Rev},
	FormatRGBDXT1UnormBlock8:          {Internal: 0x83F0}, // GL_COMPRESSED_RGB_S3TC_DXT1
	FormatRGBDXT1SrgbBlock8:           {Internal: 0x8C4C}, // GL_COMPRESSED_SRGB_S3TC_DXT1
	FormatRGBADXT1UnormBlock8:         {Internal: 0x83F1}, // GL_COMPRESSED_RGBA_S3TC_DXT1
	FormatRGBADXT1SrgbBlock8:          {Internal: 0x8C4D}, // GL_COMPRESSED_SRGB_ALPHA_S3TC_DXT1
	FormatRGBADXT3UnormBlock16:        {Internal: 0x83F2}, // GL_COMPRESSED_RGBA_S3TC_DXT3
	FormatRGBADXT3SrgbBlock16:         {Internal: 0x8C4E}, // GL_COMPRESSED_SRGB_ALPHA_S3TC_DXT3
	FormatRGBADXT5UnormBlock16:        {Internal: 0x83F3}, // GL_COMPRESSED_RGBA_S3TC_DXT5
	FormatRGBADXT5SrgbBlock16:         {Internal: 0x8C4F}, // GL_COMPRESSED_SRGB_ALPHA_S3TC_DXT5
	FormatRATI1NUnormBlock8:           {Internal: 0x8DBB}, // GL_COMPRESSED_RED_RGTC1
	FormatRATI1NSnormBlock8:           {Internal: 0x8DBC}, // GL_COMPRESSED_SIGNED_RED_RGTC1
	FormatRGATI2NUnormBlock16:         {Internal: 0x8DBD}, // GL_COMPRESSED_RG_RGTC2
	FormatRGATI2NSnormBlock16:         {Internal: 0x8DBE}, // GL_COMPRESSED_SIGNED_RG_RGTC2
	FormatRGBBPUfloatBlock16:          {Internal: 0x8E8F}, // GL_COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT
	FormatRGBBPSfloatBlock16:          {Internal: 0x8E8E}, // GL_COMPRESSED_RGB_BPTC_SIGNED_FLOAT
	FormatRGBABPUnormBlock16:          {Internal: 0x8E8C}, // GL_COMPRESSED_RGBA_BPTC_UNORM
	FormatRGBABPSrgbBlock16:           {Internal: 0x8E8D}, // GL_COMPRESSED_SRGB_ALPHA_BPTC_UNORM
	FormatRGBETC2UnormBlock8:          {Internal: 0x9274}, // GL_COMPRESSED_RGB8_ETC2
	FormatRGBETC2SrgbBlock8:           {Internal: 0x9275}, // GL_COMPRESSED_SRGB8_ETC2
	FormatRGBAETC2UnormBlock8:         {Internal: 0x9276}, // GL_COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2
	FormatRGBAETC2SrgbBlock8:          {Internal: 0x9277}, // GL_COMPRESSED_SRGB8_PUNCHTHROUGH_ALPHA1_ETC2
	FormatRGBAETC2UnormBlock16:        {Internal: 0x9278}, // GL_COMPRESSED_RGBA8_ETC2_EAC
	FormatRGBAETC2SrgbBlock16:         {Internal: 0x9279}, // GL_COMPRESSED_SRGB8_ALPHA8_ETC2_EAC
	FormatREACUnormBlock8:             {Internal: 0x9270}, // GL_COMPRESSED_R11_EAC
	FormatREACSnormBlock8:             {Internal: 0x9271}, // GL_COMPRESSED_SIGNED_R11_EAC
	FormatRGEACUnormBlock16:           {Internal: 0x9272}, // GL_COMPRESSED_RG11_EAC
	FormatRGEACSnormBlock16:           {Internal: 0x9273}, // GL_COMPRESSED_SIGNED_RG11_EAC
	FormatRGBAASTC4x4UnormBlock16:     {Internal: 0x93B0}, // GL_COMPRESSED_RGBA_ASTC_4x4
	FormatRGBAASTC4x4SrgbBlock16:      {Internal: 0x93D0}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_4x4
	FormatRGBAASTC5x4UnormBlock16:     {Internal: 0x93B1}, // GL_COMPRESSED_RGBA_ASTC_5x4
	FormatRGBAASTC5x4SrgbBlock16:      {Internal: 0x93D1}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_5x4
	FormatRGBAASTC5x5UnormBlock16:     {Internal: 0x93B2}, // GL_COMPRESSED_RGBA_ASTC_5x5
	FormatRGBAASTC5x5SrgbBlock16:      {Internal: 0x93D2}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_5x5
	FormatRGBAASTC6x5UnormBlock16:     {Internal: 0x93B3}, // GL_COMPRESSED_RGBA_ASTC_6x5
	FormatRGBAASTC6x5SrgbBlock16:      {Internal: 0x93D3}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_6x5
	FormatRGBAASTC6x6UnormBlock16:     {Internal: 0x93B4}, // GL_COMPRESSED_RGBA_ASTC_6x6
	FormatRGBAASTC6x6SrgbBlock16:      {Internal: 0x93D4}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_6x6
	FormatRGBAASTC8x5UnormBlock16:     {Internal: 0x93B5}, // GL_COMPRESSED_RGBA_ASTC_8x5
	FormatRGBAASTC8x5SrgbBlock16:      {Internal: 0x93D5}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_8x5
	FormatRGBAASTC8x6UnormBlock16:     {Internal: 0x93B6}, // GL_COMPRESSED_RGBA_ASTC_8x6
	FormatRGBAASTC8x6SrgbBlock16:      {Internal: 0x93D6}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_8x6
	FormatRGBAASTC8x8UnormBlock16:     {Internal: 0x93B7}, // GL_COMPRESSED_RGBA_ASTC_8x8
	FormatRGBAASTC8x8SrgbBlock16:      {Internal: 0x93D7}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_8x8
	FormatRGBAASTC10x5UnormBlock16:    {Internal: 0x93B8}, // GL_COMPRESSED_RGBA_ASTC_10x5
	FormatRGBAASTC10x5SrgbBlock16:     {Internal: 0x93D8}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_10x5
	FormatRGBAASTC10x6UnormBlock16:    {Internal: 0x93B9}, // GL_COMPRESSED_RGBA_ASTC_10x6
	FormatRGBAASTC10x6SrgbBlock16:     {Internal: 0x93D9}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_10x6
	FormatRGBAASTC10x8UnormBlock16:    {Internal: 0x93BA}, // GL_COMPRESSED_RGBA_ASTC_10x8
	FormatRGBAASTC10x8SrgbBlock16:     {Internal: 0x93DA}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_10x8
	FormatRGBAASTC10x10UnormBlock16:   {Internal: 0x93BB}, // GL_COMPRESSED_RGBA_ASTC_10x10
	FormatRGBAASTC10x10SrgbBlock16:    {Internal: 0x93DB}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_10x10
	FormatRGBAASTC12x10UnormBlock16:   {Internal: 0x93BC}, // GL_COMPRESSED_RGBA_ASTC_12x10
	FormatRGBAASTC12x10SrgbBlock16:    {Internal: 0x93DC}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_12x10
	FormatRGBAASTC12x12UnormBlock16:   {Internal: 0x93BD}, // GL_COMPRESSED_RGBA_ASTC_12x12
	FormatRGBAASTC12x12SrgbBlock16:    {Internal: 0x93DD}, // GL_COMPRESSED_SRGB8_ALPHA8_ASTC_12x12
	FormatRGBPVRTC1_8x8UnormBlock32:   {Internal: 0x8C00}, // GL_COMPRESSED_RGB_PVRTC_4BPPV1
	FormatRGBPVRTC1_8x8SrgbBlock32:    {Internal: 0x8A55}, // GL_COMPRESSED_SRGB_PVRTC_4BPPV1
	FormatRGBPVRTC1_16x8UnormBlock32:  {Internal: 0x8C01}, // GL_COMPRESSED_RGB_PVRTC_2BPPV1
	FormatRGBPVRTC1_16x8SrgbBlock32:   {Internal: 0x8A54}, // GL_COMPRESSED_SRGB_PVRTC_2BPPV1
	FormatRGBAPVRTC1_8x8UnormBlock32:  {Internal: 0x8C02}, // GL_COMPRESSED_RGBA_PVRTC_4BPPV1
	FormatRGBAPVRTC1_8x8SrgbBlock32:   {Internal: 0x8A57}, // GL_COMPRESSED_SRGB_ALPHA_PVRTC_4BPPV1
	FormatRGBAPVRTC1_16x8UnormBlock32: {Internal: 0x8C03}, // GL_COMPRESSED_RGBA_PVRTC_2BPPV1
	FormatRGBAPVRTC1_16x8SrgbBlock32:  {Internal: 0x8A56}, // GL_COMPRESSED_SRGB_ALPHA_PVRTC_2BPPV1
	FormatRGBAPVRTC2_4x4UnormBlock8:   {Internal: 0x9138}, // GL_COMPRESSED_RGBA_PVRTC_4BPPV2
	FormatRGBAPVRTC2_4x4SrgbBlock8:    {Internal: 0x93F1}, // GL_COMPRESSED_SRGB_ALPHA_PVRTC_4BPPV2
	FormatRGBAPVRTC2_8x4UnormBlock8:   {Internal: 0x9137}, // GL_COMPRESSED_RGBA_PVRTC_2BPPV2
	FormatRGBAPVRTC2_8x4SrgbBlock8:    {Internal: 0x93F0}, // GL_COMPRESSED_SRGB_ALPHA_PVRTC_2BPPV2
	FormatRGBETCUnormBlock8:           {Internal: 0x8D64}, // GL_ETC1_RGB8
	FormatRGBATCUnormBlock8:           {Internal: 0x8C92}, // GL_ATC_RGB
	FormatRGBAATCAUnormBlock16:        {Internal: 0x8C93}, // GL_ATC_RGBA_EXPLICIT_ALPHA
	FormatRGBAATCIUnormBlock16:        {Internal: 0x87EE}, // GL_ATC_RGBA_INTERPOLATED_ALPHA
	FormatL8UnormPack8:                {glLuminance8, glLuminance, glUnsignedByte},
	FormatA8UnormPack8:                {glAlpha8, glAlpha, glUnsignedByte},
	FormatLA8UnormPack8:               {glLuminance8Alpha8, glLuminanceAlpha, glUnsignedByte},
	FormatL16UnormPack16:              {glLuminance16, glLuminance, glUnsignedShort},
	FormatA16UnormPack16:              {glAlpha16, glAlpha, glUnsignedShort},
	FormatLA16UnormPack16:             {glLuminance16Alpha16, glLuminanceAlpha, glUnsignedShort},
	FormatBGR8UnormPack32:             {glRGB8, glBGRA, glUnsignedInt8888Rev},
	FormatBGR8SrgbPack32:              {glSRGB8, glBGRA, glUnsignedInt8888Rev},
	FormatRG3B2UnormPack8:             {glR3G3B2, glRGB, glUnsignedByte332},
}

// glReverse maps full triples, and internal formats of compressed formats,
// back to a Format.
var glReverse = func() map[GLFormat]Format {
	m := make(map[GLFormat]Format, len(glTable))
	for f, g := range glTable {
		m[g] = f
	}
	return m
}()

// GLFormatFor returns the OpenGL triple for f.
func GLFormatFor(f Format) (GLFormat, bool) {
	g, ok := glTable[f]
	return g, ok
}

// FormatFromGL returns the format described by g, or FormatUndefined.
func FormatFromGL(g GLFormat) Format {
	if f, ok := glReverse[g]; ok {
		return f
	}
	if f, ok := glReverse[GLFormat{Internal: g.Internal}]; ok {
		return f
	}
	return FormatUndefined
}

// glBaseInternalFormat returns the unsized base format KTX stores next to
// the internal format.
func glBaseInternalFormat(f Format, g GLFormat) uint32 {
	if f.IsCompressed() {
		switch f.Components() {
		case 1:
			return glRed
		case 2:
			return glRG
		case 3:
			return glRGB
		}
		return glRGBA
	}
	switch g.External {
	case glRedInteger:
		return glRed
	case glRGInteger:
		return glRG
	case glRGBInteger, glBGRInteger, glBGR:
		return glRGB
	case glRGBAInteger, glBGRAInteger, glBGRA:
		return glRGBA
	}
	return g.External
}

// glTypeSize returns the KTX glTypeSize of f: the size of the component
// type, or of the whole texel for packed formats.
func glTypeSize(f Format) uint32 {
	if f.IsCompressed() {
		return 1
	}
	if f.IsPacked() || f.IsDepthStencil() || f.Components() == 0 {
		return uint32(f.BlockSize())
	}
	return uint32(f.BlockSize() / f.Components())
}

// GLTarget is an OpenGL texture target enum.
type GLTarget uint32

const (
	GLTexture1D           GLTarget = 0x0DE0
	GLTexture2D           GLTarget = 0x0DE1
	GLTexture3D           GLTarget = 0x806F
	GLTextureRectangle    GLTarget = 0x84F5
	GLTextureCubeMap      GLTarget = 0x8513
	GLTexture1DArray      GLTarget = 0x8C18
	GLTexture2DArray      GLTarget = 0x8C1A
	GLTextureCubeMapArray GLTarget = 0x9009
)

// GLTargetFor returns the OpenGL target of t. Rectangle arrays have no
// OpenGL target and report false.
func GLTargetFor(t Target) (GLTarget, bool) {
	switch t {
	case Target1D:
		return GLTexture1D, true
	case Target1DArray:
		return GLTexture1DArray, true
	case Target2D:
		return GLTexture2D, true
	case Target2DArray:
		return GLTexture2DArray, true
	case Target3D:
		return GLTexture3D, true
	case TargetRect:
		return GLTextureRectangle, true
	case TargetCube:
		return GLTextureCubeMap, true
	case TargetCubeArray:
		return GLTextureCubeMapArray, true
	}
	return 0, false
}
